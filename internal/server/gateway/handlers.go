package gateway

import (
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/userdirectory/internal/netx"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/dmitrijs2005/userdirectory/internal/server/mapper"
	"github.com/gin-gonic/gin"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func (g *Gateway) createUser(c *gin.Context) {
	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		g.writeError(c, http.StatusBadRequest, "Malformed request body")
		return
	}
	st, err := parseStatus(in.Status)
	if err != nil {
		g.writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := g.users.CreateUser(c.Request.Context(), &pb.CreateUserRequest{
		Name: in.Name, Email: in.Email, Age: in.Age, Status: st,
	})
	if err != nil {
		g.writeRPCError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserView(resp))
}

func (g *Gateway) getUser(c *gin.Context) {
	id, ok := g.pathID(c)
	if !ok {
		return
	}

	resp, err := g.users.GetUser(c.Request.Context(), &pb.GetUserRequest{Id: id})
	if err != nil {
		g.writeRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserView(resp))
}

func (g *Gateway) updateUser(c *gin.Context) {
	id, ok := g.pathID(c)
	if !ok {
		return
	}

	var in userInput
	if err := c.ShouldBindJSON(&in); err != nil {
		g.writeError(c, http.StatusBadRequest, "Malformed request body")
		return
	}
	st, err := parseStatus(in.Status)
	if err != nil {
		g.writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := g.users.UpdateUser(c.Request.Context(), &pb.UpdateUserRequest{
		Id: id, Name: in.Name, Email: in.Email, Age: in.Age, Status: st,
	})
	if err != nil {
		g.writeRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserView(resp))
}

func (g *Gateway) deleteUser(c *gin.Context) {
	id, ok := g.pathID(c)
	if !ok {
		return
	}

	resp, err := g.users.DeleteUser(c.Request.Context(), &pb.DeleteUserRequest{Id: id})
	if err != nil {
		g.writeRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteView{Success: resp.GetSuccess(), Message: resp.GetMessage()})
}

func (g *Gateway) listUsers(c *gin.Context) {
	page, err := queryInt32(c, "page", 0)
	if err != nil {
		g.writeError(c, http.StatusBadRequest, "Invalid page parameter")
		return
	}
	size, err := queryInt32(c, "size", 10)
	if err != nil {
		g.writeError(c, http.StatusBadRequest, "Invalid size parameter")
		return
	}

	resp, err := g.users.ListUsers(c.Request.Context(), &pb.ListUsersRequest{Page: page, Size: size})
	if err != nil {
		g.writeRPCError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageView{
		Content:       toUserViews(resp.GetUsers()),
		TotalElements: resp.GetTotalCount(),
		Page:          resp.GetPage(),
		Size:          resp.GetSize(),
	})
}

// usersByStatus drains the server stream into one JSON array.
func (g *Gateway) usersByStatus(c *gin.Context) {
	st, err := pb.ParseUserStatus(c.Param("status"))
	if err != nil {
		g.writeError(c, http.StatusBadRequest, "Invalid status: "+c.Param("status"))
		return
	}

	stream, err := g.users.StreamUsersByStatus(c.Request.Context(), &pb.StreamUsersByStatusRequest{Status: st})
	if err != nil {
		g.writeRPCError(c, err)
		return
	}

	out := make([]userView, 0)
	for {
		u, err := stream.Recv()
		if err != nil {
			if isEOF(err) {
				break
			}
			g.writeRPCError(c, err)
			return
		}
		out = append(out, toUserView(u))
	}

	c.JSON(http.StatusOK, out)
}

func (g *Gateway) healthCheck(c *gin.Context) {
	state, code := "UP", http.StatusOK

	resp, err := g.health.Check(c.Request.Context(), &healthpb.HealthCheckRequest{})
	if err != nil || resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		state, code = "DOWN", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    state,
		"timestamp": mapper.FormatTimestamp(g.now()),
		"service":   applicationName,
		"grpc_port": netx.Port(g.opts.GRPCAddress),
		"rest_port": netx.Port(g.opts.Address),
	})
}

func (g *Gateway) info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"application": applicationName,
		"version":     applicationVersion,
		"description": "User directory over gRPC with a REST gateway",
		"features": gin.H{
			"grpc_server":     "gRPC server on " + g.opts.GRPCAddress,
			"rest_api":        "REST gateway on " + g.opts.Address,
			"crud_operations": "Create, read, update and delete users",
			"streaming":       "Server streaming of users by status",
			"validation":      "Input validation with descriptive errors",
			"observability":   "Structured logs, request ids and Prometheus metrics",
		},
	})
}

func (g *Gateway) pathID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		g.writeError(c, http.StatusBadRequest, "Invalid user id: "+c.Param("id"))
		return 0, false
	}
	return id, true
}

func queryInt32(c *gin.Context, key string, def int32) (int32, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}
