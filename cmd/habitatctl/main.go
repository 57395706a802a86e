// Command habitatctl is a small CLI for the UserHabitat API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

type client struct {
	BaseURL   string
	Token     string
	OutFormat string // "json" | "text"
	HTTP      *http.Client
}

func (c *client) do(method, path string, body []byte) (int, []byte, error) {
	u := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequest(method, u, bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b, nil
}

func (c *client) print(status int, body []byte) {
	if c.OutFormat == "json" {
		var v any
		if json.Unmarshal(body, &v) == nil {
			p, _ := json.MarshalIndent(v, "", "  ")
			fmt.Println(string(p))
			return
		}
	}
	if len(body) > 0 {
		fmt.Println(string(body))
	} else {
		fmt.Printf("status=%d\n", status)
	}
}

func main() {
	var (
		baseURL = envOr("USERHABITAT_URL", "http://localhost:3000")
		token   = envOr("USERHABITAT_TOKEN", "")
		out     = envOr("USERHABITAT_OUT", "text")
		timeout = 30 * time.Second
	)

	root := &cobra.Command{
		Use:   "habitatctl",
		Short: "CLI for the UserHabitat API",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return fmt.Errorf("missing API token (flag --token or env USERHABITAT_TOKEN)")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&baseURL, "url", baseURL, "API base URL (env USERHABITAT_URL)")
	root.PersistentFlags().StringVar(&token, "token", token, "bearer token (env USERHABITAT_TOKEN)")
	root.PersistentFlags().StringVar(&out, "out", out, "output format: text|json (env USERHABITAT_OUT)")

	cl := func() *client {
		return &client{
			BaseURL:   baseURL,
			Token:     token,
			OutFormat: out,
			HTTP:      &http.Client{Timeout: timeout},
		}
	}

	// ─── users ───
	usersCmd := &cobra.Command{Use: "users", Short: "Manage users"}

	usersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl()
			status, body, err := c.do(http.MethodGet, "/users", nil)
			if err != nil {
				return err
			}
			c.print(status, body)
			return nil
		},
	})

	usersCmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Get a user by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl()
			status, body, err := c.do(http.MethodGet, "/users/"+url.PathEscape(args[0]), nil)
			if err != nil {
				return err
			}
			c.print(status, body)
			return nil
		},
	})

	var userName string
	usersCreate := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl()
			b, _ := json.Marshal(map[string]string{"name": userName})
			status, body, err := c.do(http.MethodPost, "/users", b)
			if err != nil {
				return err
			}
			c.print(status, body)
			return nil
		},
	}
	usersCreate.Flags().StringVar(&userName, "name", "", "user name (required)")
	_ = usersCreate.MarkFlagRequired("name")
	usersCmd.AddCommand(usersCreate)

	usersCmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a user (fails while it owns houses)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl()
			status, body, err := c.do(http.MethodDelete, "/users/"+url.PathEscape(args[0]), nil)
			if err != nil {
				return err
			}
			c.print(status, body)
			return nil
		},
	})

	// ─── houses ───
	housesCmd := &cobra.Command{Use: "houses", Short: "Manage a user's houses"}

	var fCity, fAddress, fCountry string
	housesList := &cobra.Command{
		Use:   "list <userId>",
		Short: "List a user's houses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl()
			q := url.Values{}
			if fCity != "" {
				q.Set("city", fCity)
			}
			if fAddress != "" {
				q.Set("address", fAddress)
			}
			if fCountry != "" {
				q.Set("country", fCountry)
			}
			path := "/users/" + url.PathEscape(args[0]) + "/houses"
			if enc := q.Encode(); enc != "" {
				path += "?" + enc
			}
			status, body, err := c.do(http.MethodGet, path, nil)
			if err != nil {
				return err
			}
			c.print(status, body)
			return nil
		},
	}
	housesList.Flags().StringVar(&fCity, "city", "", "filter by city")
	housesList.Flags().StringVar(&fAddress, "address", "", "filter by address")
	housesList.Flags().StringVar(&fCountry, "country", "", "filter by country")
	housesCmd.AddCommand(housesList)

	var hAddress, hCity, hCountry string
	housesCreate := &cobra.Command{
		Use:   "create <userId>",
		Short: "Create a house for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl()
			b, _ := json.Marshal(map[string]string{
				"address": hAddress,
				"city":    hCity,
				"country": hCountry,
			})
			status, body, err := c.do(http.MethodPost, "/users/"+url.PathEscape(args[0])+"/houses", b)
			if err != nil {
				return err
			}
			c.print(status, body)
			return nil
		},
	}
	housesCreate.Flags().StringVar(&hAddress, "address", "", "house address (required)")
	housesCreate.Flags().StringVar(&hCity, "city", "", "house city (required)")
	housesCreate.Flags().StringVar(&hCountry, "country", "", "house country (required)")
	_ = housesCreate.MarkFlagRequired("address")
	_ = housesCreate.MarkFlagRequired("city")
	_ = housesCreate.MarkFlagRequired("country")
	housesCmd.AddCommand(housesCreate)

	housesCmd.AddCommand(&cobra.Command{
		Use:   "delete <userId> <houseId>",
		Short: "Delete a user's house",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cl()
			path := "/users/" + url.PathEscape(args[0]) + "/houses/" + url.PathEscape(args[1])
			status, body, err := c.do(http.MethodDelete, path, nil)
			if err != nil {
				return err
			}
			c.print(status, body)
			return nil
		},
	})

	root.AddCommand(usersCmd, housesCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
