// Command client is a small CLI over the onboarding API. It keeps a
// persisted session under the user's home directory and applies the
// route guard before showing the dashboard or admin views.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"onboarding_system/internal/client"
	"onboarding_system/internal/session"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "onboarding server base URL")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		fatal(err)
	}
	sessions := session.NewStore(filepath.Join(home, ".onboarding", "session.json"))
	// Restore the persisted session before any command runs
	if err := sessions.Restore(); err != nil {
		fatal(err)
	}

	api := client.New(*serverURL, sessions)
	ctx := context.Background()

	switch args[0] {
	case "register":
		cmd := flag.NewFlagSet("register", flag.ExitOnError)
		name := cmd.String("name", "", "display name")
		email := cmd.String("email", "", "login email")
		gstin := cmd.String("gstin", "", "business tax identifier")
		pass := cmd.String("password", "", "password")
		_ = cmd.Parse(args[1:])
		if err := api.Register(ctx, *name, *email, *gstin, *pass); err != nil {
			fatal(err)
		}
		fmt.Println("Registration successful.")
	case "login":
		cmd := flag.NewFlagSet("login", flag.ExitOnError)
		email := cmd.String("email", "", "login email")
		pass := cmd.String("password", "", "password")
		_ = cmd.Parse(args[1:])
		identity, err := api.Login(ctx, *email, *pass)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Logged in as %s <%s>\n", identity.Name, identity.Email)
	case "admin-login":
		cmd := flag.NewFlagSet("admin-login", flag.ExitOnError)
		username := cmd.String("username", "", "admin username")
		pass := cmd.String("password", "", "admin password")
		_ = cmd.Parse(args[1:])
		identity, err := api.AdminLogin(ctx, *username, *pass)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("Logged in as %s (admin)\n", identity.Name)
	case "logout":
		if err := api.Logout(); err != nil {
			fatal(err)
		}
		fmt.Println("Logged out.")
	case "dashboard":
		// Regular protected view
		if !guard(sessions, false) {
			os.Exit(1)
		}
		current := sessions.Current()
		fmt.Printf("Dashboard for %s <%s>, GSTIN %s\n", current.Identity.Name, current.Identity.Email, current.Identity.GSTIN)
	case "admin":
		// Admin-only protected view
		if !guard(sessions, true) {
			os.Exit(1)
		}
		users, err := api.Users(ctx)
		if err != nil {
			fatal(err)
		}
		for _, u := range users {
			fmt.Printf("%s  %s  %s  %s  %s\n", u.ID, u.Name, u.Email, u.GSTIN, u.CreatedAt.Format("2006-01-02 15:04:05"))
		}
	case "profile":
		profile, err := api.Profile(ctx)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("%s <%s>, GSTIN %s\n", profile.Name, profile.Email, profile.GSTIN)
	default:
		usage()
		os.Exit(2)
	}
}

// guard applies the route guard to the current session and reports
// whether the protected view may render.
func guard(sessions *session.Store, requireAdmin bool) bool {
	switch decision := session.Decide(sessions.Current(), requireAdmin); decision {
	case session.Render:
		return true
	case session.Wait:
		fmt.Println("Loading...")
		return false
	case session.RedirectLogin:
		fmt.Println("Not logged in. Run the login command first.")
		return false
	case session.RedirectAdminLogin:
		fmt.Println("Admin access required. Run the admin-login command first.")
		return false
	}
	return false
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: client [-server URL] <register|login|admin-login|logout|dashboard|admin|profile> [flags]")
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
