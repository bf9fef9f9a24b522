// Package cli reads line commands, dispatches them, and prints user-facing
// output. Operator diagnostics go to the standard logger, never to the user.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"vaccine-scheduler/internal/auth"
	"vaccine-scheduler/internal/model"
	"vaccine-scheduler/internal/session"
	"vaccine-scheduler/internal/store"
)

const dateLayout = "2006-01-02"

type CLI struct {
	store  *store.Store
	sess   *session.Session
	logins *auth.LoginLimiter
	out    io.Writer
}

func New(st *store.Store, out io.Writer) *CLI {
	return &CLI{
		store:  st,
		sess:   session.New(),
		logins: auth.NewLoginLimiter(1, 5),
		out:    out,
	}
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

func (c *CLI) greet() {
	c.printf("")
	c.printf("Welcome to the COVID-19 Vaccine Reservation Scheduling Application!")
	c.printf("*** Please enter one of the following commands ***")
	c.printf("> create_patient <username> <password>")
	c.printf("> create_caregiver <username> <password>")
	c.printf("> login_patient <username> <password>")
	c.printf("> login_caregiver <username> <password>")
	c.printf("> search_caregiver_schedule <date>")
	c.printf("> reserve <date> <vaccine>")
	c.printf("> upload_availability <date>")
	c.printf("> cancel <appointment_id>")
	c.printf("> add_doses <vaccine> <number>")
	c.printf("> show_appointments")
	c.printf("> logout")
	c.printf("> quit")
	c.printf("")
}

// Run processes one command at a time until quit or end of input.
func (c *CLI) Run(ctx context.Context, r io.Reader) error {
	c.greet()
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(c.out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		if quit := c.Execute(ctx, sc.Text()); quit {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the loop should stop.
func (c *CLI) Execute(ctx context.Context, line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		c.printf("Please try again!")
		return false
	}

	switch tokens[0] {
	case "create_patient":
		c.createAccount(ctx, model.RolePatient, tokens)
	case "create_caregiver":
		c.createAccount(ctx, model.RoleCaregiver, tokens)
	case "login_patient":
		c.login(ctx, model.RolePatient, tokens)
	case "login_caregiver":
		c.login(ctx, model.RoleCaregiver, tokens)
	case "search_caregiver_schedule":
		c.searchSchedule(ctx, tokens)
	case "reserve":
		c.reserve(ctx, tokens)
	case "upload_availability":
		c.uploadAvailability(ctx, tokens)
	case "cancel":
		c.cancel(ctx, tokens)
	case "add_doses":
		c.addDoses(ctx, tokens)
	case "show_appointments":
		c.showAppointments(ctx, tokens)
	case "logout":
		c.logout(tokens)
	case "quit":
		c.printf("Bye!")
		return true
	default:
		c.printf("Invalid operation name!")
	}
	return false
}
