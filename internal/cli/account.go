package cli

import (
	"context"
	"errors"
	"log"

	"vaccine-scheduler/internal/auth"
	"vaccine-scheduler/internal/model"
	"vaccine-scheduler/internal/session"
	"vaccine-scheduler/internal/store"
)

func (c *CLI) createAccount(ctx context.Context, role model.Role, tokens []string) {
	if len(tokens) != 3 {
		c.printf("Please try again!")
		return
	}
	username, password := tokens[1], tokens[2]

	salt, err := auth.GenerateSalt()
	if err != nil {
		log.Printf("create %s: salt: %v", role, err)
		c.printf("Failed to create user.")
		return
	}

	a := &model.Account{
		Username: username,
		Salt:     salt,
		Hash:     auth.HashPassword(password, salt),
	}
	if err := c.store.CreateAccount(ctx, role, a); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			c.printf("Username taken, try again!")
			return
		}
		log.Printf("create %s: %v", role, err)
		c.printf("Failed to create user.")
		return
	}
	c.printf("Created user %s", username)
}

func (c *CLI) login(ctx context.Context, role model.Role, tokens []string) {
	if _, ok := c.sess.Current(); ok {
		c.printf("User already logged in, try again!")
		return
	}
	if len(tokens) != 3 {
		c.printf("Please try again!")
		return
	}
	username, password := tokens[1], tokens[2]

	if !c.logins.Allow(username) {
		c.printf("Too many login attempts, please try again later!")
		return
	}

	// a missing account and a wrong password both read "Login failed." so the
	// prompt cannot be used to enumerate usernames
	a, err := c.store.AccountByUsername(ctx, role, username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("login %s: %v", role, err)
		}
		c.printf("Login failed.")
		return
	}
	if !auth.CheckPassword(a.Hash, a.Salt, password) {
		c.printf("Login failed.")
		return
	}

	if err := c.sess.Login(session.Identity{Role: role, Username: username}); err != nil {
		c.printf("User already logged in, try again!")
		return
	}
	c.printf("Logged in as %s", username)
}

func (c *CLI) logout(tokens []string) {
	if len(tokens) != 1 {
		c.printf("Please try again!")
		return
	}
	if err := c.sess.Logout(); err != nil {
		c.printf("Please login first!")
		return
	}
	c.printf("Successfully logged out!")
}
