package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avillagran/boletera/internal/client/models"
	"github.com/avillagran/boletera/internal/common"
	"github.com/avillagran/boletera/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for email and password and authenticates through
// the session manager. On success the bearer token and profile are already
// persisted by the manager; the handler only reports the outcome.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.Email(email) {
		return errors.New("Formato de email inválido")
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeBytes(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		return err
	}

	if u, ok := a.session.CurrentUser(); ok {
		printlnFn(fmt.Sprintf("Logged in as %s %s (%s)", u.FirstName, u.LastName, u.Role))
	}
	return nil
}

// Register collects the registration form, validates it with the same rules
// the backend's mobile client enforces, and creates the account. A
// successful registration logs the new user in immediately.
func (a *App) Register(ctx context.Context) error {
	firstName, err := getSimpleText(a.reader, "Enter first name", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.Required(firstName) {
		return errors.New("El nombre es obligatorio")
	}

	lastName, err := getSimpleText(a.reader, "Enter last name", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.Required(lastName) {
		return errors.New("El apellido es obligatorio")
	}

	doc, err := getSimpleText(a.reader, "Enter document number (CI)", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.Document(doc) {
		return errors.New("Documento inválido")
	}
	docNum, err := strconv.ParseInt(doc, 10, 64)
	if err != nil {
		return errors.New("Documento inválido")
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.Email(email) {
		return errors.New("Formato de email inválido")
	}

	birthDate, err := getSimpleText(a.reader, "Enter birth date (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", birthDate); err != nil {
		return errors.New("Fecha de nacimiento inválida")
	}

	phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
	if err != nil {
		return err
	}
	var phoneNum *int64
	if phone != "" {
		if !validation.Phone(phone) {
			return errors.New("Teléfono inválido")
		}
		n, err := strconv.ParseInt(digitsOnly(phone), 10, 64)
		if err != nil {
			return errors.New("Teléfono inválido")
		}
		phoneNum = &n
	}

	password, err := getPassword(os.Stdout, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeBytes(password)
	if ok, msg := validation.Password(string(password)); !ok {
		return errors.New(msg)
	}

	req := models.RegisterRequest{
		FirstName:  firstName,
		LastName:   lastName,
		DocumentID: docNum,
		Password:   string(password),
		Email:      email,
		Phone:      phoneNum,
		BirthDate:  birthDate,
	}

	if err := a.session.Register(ctx, req); err != nil {
		return err
	}

	printlnFn("Account created. You are now logged in.")
	return nil
}

// ForgotPassword requests a recovery email for the given address.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.Email(email) {
		return errors.New("Formato de email inválido")
	}

	msg, err := a.auth.ForgotPassword(ctx, email)
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}

// ResetPassword exchanges a recovery token for a new password.
func (a *App) ResetPassword(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Enter recovery token", os.Stdout)
	if err != nil {
		return err
	}
	if !validation.Required(token) {
		return errors.New("El token es obligatorio")
	}

	password, err := getPassword(os.Stdout, "Enter new password: ")
	if err != nil {
		return err
	}
	defer common.WipeBytes(password)
	if ok, msg := validation.Password(string(password)); !ok {
		return errors.New(msg)
	}

	msg, err := a.auth.ResetPassword(ctx, token, string(password))
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}

// Logout clears the session. It never fails: the in-memory session is gone
// as soon as the manager returns, and storage cleanup is best-effort.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
