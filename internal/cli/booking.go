package cli

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"vaccine-scheduler/internal/model"
	"vaccine-scheduler/internal/store"
)

func (c *CLI) uploadAvailability(ctx context.Context, tokens []string) {
	id, ok := c.sess.Current()
	if !ok || id.Role != model.RoleCaregiver {
		c.printf("Please login as a caregiver first!")
		return
	}
	if len(tokens) != 2 {
		c.printf("Please try again!")
		return
	}
	date, err := time.Parse(dateLayout, tokens[1])
	if err != nil {
		c.printf("Please enter a valid date!")
		return
	}

	if err := c.store.UploadAvailability(ctx, date, id.Username); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.printf("Availability already uploaded for this date!")
			return
		}
		log.Printf("upload availability: %v", err)
		c.printf("Error occurred when uploading availability")
		return
	}
	c.printf("Availability uploaded!")
}

func (c *CLI) addDoses(ctx context.Context, tokens []string) {
	id, ok := c.sess.Current()
	if !ok || id.Role != model.RoleCaregiver {
		c.printf("Please login as a caregiver first!")
		return
	}
	if len(tokens) != 3 {
		c.printf("Please try again!")
		return
	}
	doses, err := strconv.Atoi(tokens[2])
	if err != nil || doses < 0 {
		c.printf("Please enter a valid number of doses!")
		return
	}

	if err := c.store.AddDoses(ctx, tokens[1], doses); err != nil {
		log.Printf("add doses: %v", err)
		c.printf("Error occurred when adding doses")
		return
	}
	c.printf("Doses updated!")
}

func (c *CLI) searchSchedule(ctx context.Context, tokens []string) {
	if _, ok := c.sess.Current(); !ok {
		c.printf("Please login first!")
		return
	}
	if len(tokens) != 2 {
		c.printf("Please try again!")
		return
	}
	date, err := time.Parse(dateLayout, tokens[1])
	if err != nil {
		c.printf("Please enter a valid date!")
		return
	}

	caregivers, err := c.store.CaregiversAvailableOn(ctx, date)
	if err != nil {
		log.Printf("search schedule: %v", err)
		c.printf("Please try again!")
		return
	}
	vaccines, err := c.store.ListVaccines(ctx)
	if err != nil {
		log.Printf("search schedule: %v", err)
		c.printf("Please try again!")
		return
	}

	for _, u := range caregivers {
		c.printf("%s", u)
	}
	for _, v := range vaccines {
		c.printf("%s %d", v.Name, v.Doses)
	}
}

func (c *CLI) reserve(ctx context.Context, tokens []string) {
	id, ok := c.sess.Current()
	if !ok {
		c.printf("Please login first!")
		return
	}
	if id.Role != model.RolePatient {
		c.printf("Please login as a patient!")
		return
	}
	if len(tokens) != 3 {
		c.printf("Please try again!")
		return
	}
	date, err := time.Parse(dateLayout, tokens[1])
	if err != nil {
		c.printf("Please enter a valid date!")
		return
	}

	res, err := c.store.Reserve(ctx, date, tokens[2], id.Username)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoCaregiver):
			c.printf("No caregiver is available")
		case errors.Is(err, store.ErrNoDoses):
			c.printf("Not enough doses")
		default:
			log.Printf("reserve: %v", err)
			c.printf("Please try again!")
		}
		return
	}
	c.printf("Appointment ID %d, Caregiver username %s", res.AppointmentID, res.Caregiver)
}

func (c *CLI) cancel(ctx context.Context, tokens []string) {
	id, ok := c.sess.Current()
	if !ok {
		c.printf("Please login first!")
		return
	}
	if len(tokens) != 2 {
		c.printf("Please try again!")
		return
	}
	apptID, err := strconv.ParseInt(tokens[1], 10, 64)
	if err != nil {
		c.printf("Please try again!")
		return
	}

	if err := c.store.Cancel(ctx, apptID, id.Role, id.Username); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.printf("Appointment not found!")
			return
		}
		log.Printf("cancel: %v", err)
		c.printf("Please try again!")
		return
	}
	c.printf("Canceled appointment with ID %d", apptID)
}

func (c *CLI) showAppointments(ctx context.Context, tokens []string) {
	id, ok := c.sess.Current()
	if !ok {
		c.printf("Please login first!")
		return
	}
	if len(tokens) != 1 {
		c.printf("Please try again!")
		return
	}

	appts, err := c.store.AppointmentsFor(ctx, id.Role, id.Username)
	if err != nil {
		log.Printf("show appointments: %v", err)
		c.printf("Please try again!")
		return
	}

	for _, a := range appts {
		other := a.Caregiver
		if id.Role == model.RoleCaregiver {
			other = a.Patient
		}
		c.printf("%d %s %s %s", a.ID, a.Vaccine, a.Date.Format(dateLayout), other)
	}
}
