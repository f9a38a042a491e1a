package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gosuri/uitable"
	"gopkg.in/yaml.v3"

	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type userJSON struct {
	ID        uint64 `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Email     string `json:"email" yaml:"email"`
	Age       *int32 `json:"age" yaml:"age"`
	Status    string `json:"status" yaml:"status"`
	CreatedAt string `json:"createdAt" yaml:"createdAt"`
	UpdatedAt string `json:"updatedAt" yaml:"updatedAt"`
}

type pageJSON struct {
	Content       []userJSON `json:"content" yaml:"content"`
	TotalElements int32      `json:"totalElements" yaml:"totalElements"`
	Page          int32      `json:"page" yaml:"page"`
	Size          int32      `json:"size" yaml:"size"`
}

func toJSON(us []*pb.UserResponse) []userJSON {
	out := make([]userJSON, 0, len(us))
	for _, u := range us {
		out = append(out, userJSON{
			ID: u.GetId(), Name: u.GetName(), Email: u.GetEmail(), Age: u.Age,
			Status: u.GetStatus().String(), CreatedAt: u.GetCreatedAt(), UpdatedAt: u.GetUpdatedAt(),
		})
	}
	return out
}

// encode writes v in the structured format selected by the output flag.
func (a *app) encode(w io.Writer, v any) error {
	if a.opts.output == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("error formatting output: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

func (a *app) printUsers(w io.Writer, us ...*pb.UserResponse) error {
	if a.opts.output != outputTable {
		if len(us) == 1 {
			return a.encode(w, toJSON(us)[0])
		}
		return a.encode(w, toJSON(us))
	}
	return writeTable(w, us)
}

func (a *app) printPage(w io.Writer, p *pb.ListUsersResponse) error {
	if a.opts.output != outputTable {
		return a.encode(w, pageJSON{toJSON(p.GetUsers()), p.GetTotalCount(), p.GetPage(), p.GetSize()})
	}
	if err := writeTable(w, p.GetUsers()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "page %d, size %d, total %d\n", p.GetPage(), p.GetSize(), p.GetTotalCount())
	return err
}

// Streamed rows are printed as they arrive, so columns have fixed widths
// instead of being sized to the whole result like writeTable does.
const streamRowFormat = "%-6v %-24v %-32v %-4v %-10v %v\n"

func writeStreamHeader(w io.Writer) error {
	_, err := fmt.Fprintf(w, streamRowFormat, "ID", "NAME", "EMAIL", "AGE", "STATUS", "UPDATED")
	return err
}

func writeStreamRow(w io.Writer, u *pb.UserResponse) error {
	_, err := fmt.Fprintf(w, streamRowFormat, u.GetId(), u.GetName(), u.GetEmail(), ageCell(u), u.GetStatus(), u.GetUpdatedAt())
	return err
}

func ageCell(u *pb.UserResponse) string {
	if u.Age == nil {
		return "-"
	}
	return fmt.Sprint(*u.Age)
}

func writeTable(w io.Writer, us []*pb.UserResponse) error {
	table := uitable.New()
	table.AddRow("ID", "NAME", "EMAIL", "AGE", "STATUS", "UPDATED")
	for _, u := range us {
		table.AddRow(u.GetId(), u.GetName(), u.GetEmail(), ageCell(u), u.GetStatus(), u.GetUpdatedAt())
	}
	_, err := fmt.Fprintln(w, table)
	return err
}
