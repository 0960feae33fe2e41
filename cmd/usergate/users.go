package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	dto "github.com/dropDatabas3/usergate/internal/http/dto/users"
)

func newUsersCmd() *cobra.Command {
	var (
		baseURL = envOr("USERGATE_URL", "http://localhost:3000")
		out     = envOr("USERGATE_OUT", "text")
		timeout = 30 * time.Second
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "Operaciones sobre /users de una instancia de usergate",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", baseURL, "URL base de usergate (env USERGATE_URL)")
	cmd.PersistentFlags().StringVar(&out, "out", out, "Formato de salida: json|text")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", timeout, "Timeout por request")

	newClient := func(cmd *cobra.Command) *client {
		return &client{
			BaseURL:   baseURL,
			OutFormat: out,
			HTTP:      &http.Client{Timeout: timeout},
			Out:       cmd.OutOrStdout(),
		}
	}

	// create
	var email, password, username, picture string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crea una cuenta (POST /users)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" || password == "" {
				return fmt.Errorf("--email y --password son requeridos")
			}
			req := dto.CreateUserRequest{
				Email:            email,
				Password:         password,
				SubscriptionPlan: string(dto.DefaultPlan),
			}
			if username != "" {
				req.Username = &username
			}
			if picture != "" {
				req.ProfilePictureURL = &picture
			}
			b, _ := json.Marshal(req)
			return newClient(cmd).call("create", http.MethodPost, "/users", b)
		},
	}
	createCmd.Flags().StringVar(&email, "email", "", "Email de la cuenta")
	createCmd.Flags().StringVar(&password, "password", "", "Password de la cuenta")
	createCmd.Flags().StringVar(&username, "username", "", "Username (opcional)")
	createCmd.Flags().StringVar(&picture, "picture", "", "URL de foto de perfil (opcional)")

	// get
	getCmd := &cobra.Command{
		Use:   "get <user_id>",
		Short: "Obtiene el registro de un usuario (GET /users/{user_id})",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newClient(cmd).call("get", http.MethodGet, "/users/"+url.PathEscape(args[0]), nil)
		},
	}

	// update
	var patch string
	updateCmd := &cobra.Command{
		Use:   "update <user_id>",
		Short: "Modifica el registro de un usuario (PUT /users/{user_id})",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !json.Valid([]byte(patch)) {
				return fmt.Errorf("--patch debe ser JSON válido")
			}
			return newClient(cmd).call("update", http.MethodPut, "/users/"+url.PathEscape(args[0]), []byte(patch))
		},
	}
	updateCmd.Flags().StringVar(&patch, "patch", "", `Documento JSON a aplicar, ej. '{"username":"neo"}'`)

	cmd.AddCommand(createCmd, getCmd, updateCmd)
	return cmd
}
