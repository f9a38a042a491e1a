package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/userdirectory/internal/client/client"
	pb "github.com/dmitrijs2005/userdirectory/internal/proto"
	"github.com/spf13/cobra"
)

// userFlags are shared by create and update.
type userFlags struct {
	name   string
	email  string
	age    int32
	status string
}

func (f *userFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Name of the user")
	cmd.Flags().StringVarP(&f.email, "email", "e", "", "Email of the user")
	cmd.Flags().Int32Var(&f.age, "age", 0, "Age of the user (0-150)")
	cmd.Flags().StringVarP(&f.status, "status", "s", "ACTIVE", "ACTIVE, INACTIVE or SUSPENDED")
}

// input leaves Age nil when --age was not given so the server can reject it.
func (f *userFlags) input(cmd *cobra.Command) (client.UserInput, error) {
	st, err := pb.ParseUserStatus(f.status)
	if err != nil {
		return client.UserInput{}, err
	}
	in := client.UserInput{Name: f.name, Email: f.email, Status: st}
	if cmd.Flags().Changed("age") {
		age := f.age
		in.Age = &age
	}
	return in, nil
}

func parseID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}

func (a *app) createCommand() *cobra.Command {
	var f userFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.input(cmd)
			if err != nil {
				return err
			}
			return a.withClient(cmd, func(ctx context.Context, c client.Client) error {
				u, err := c.CreateUser(ctx, in)
				if err != nil {
					return err
				}
				return a.printUsers(cmd.OutOrStdout(), u)
			})
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withClient(cmd, func(ctx context.Context, c client.Client) error {
				u, err := c.GetUser(ctx, id)
				if err != nil {
					return err
				}
				return a.printUsers(cmd.OutOrStdout(), u)
			})
		},
	}
}

func (a *app) updateCommand() *cobra.Command {
	var f userFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Replace the fields of an existing user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			in, err := f.input(cmd)
			if err != nil {
				return err
			}
			return a.withClient(cmd, func(ctx context.Context, c client.Client) error {
				u, err := c.UpdateUser(ctx, id, in)
				if err != nil {
					return err
				}
				return a.printUsers(cmd.OutOrStdout(), u)
			})
		},
	}
	f.register(cmd)
	return cmd
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return a.withClient(cmd, func(ctx context.Context, c client.Client) error {
				msg, err := c.DeleteUser(ctx, id)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
				return err
			})
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	var page, size int32
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users one page at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withClient(cmd, func(ctx context.Context, c client.Client) error {
				resp, err := c.ListUsers(ctx, page, size)
				if err != nil {
					return err
				}
				return a.printPage(cmd.OutOrStdout(), resp)
			})
		},
	}
	cmd.Flags().Int32VarP(&page, "page", "p", 0, "Zero-based page number")
	cmd.Flags().Int32Var(&size, "size", 10, "Page size")
	return cmd
}

func (a *app) streamCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stream STATUS",
		Short: "Stream every user with the given status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := pb.ParseUserStatus(args[0])
			if err != nil {
				return err
			}
			return a.withClient(cmd, func(ctx context.Context, c client.Client) error {
				out := cmd.OutOrStdout()
				if a.opts.output == outputTable {
					if err := writeStreamHeader(out); err != nil {
						return err
					}
					return c.StreamUsersByStatus(ctx, st, func(u *pb.UserResponse) error {
						return writeStreamRow(out, u)
					})
				}

				// json and yaml need the whole list to form one document
				var users []*pb.UserResponse
				err := c.StreamUsersByStatus(ctx, st, func(u *pb.UserResponse) error {
					users = append(users, u)
					return nil
				})
				if err != nil {
					return err
				}
				return a.printUsers(out, users...)
			})
		},
	}
}

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, client.ErrNotFound):
		return 3
	case errors.Is(err, client.ErrInvalidArgument):
		return 4
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, client.ErrRateLimited):
		return 5
	default:
		return 1
	}
}
