package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/avillagran/boletera/internal/client/models"
	"github.com/avillagran/boletera/internal/client/session"
	"github.com/avillagran/boletera/internal/common"
	"github.com/avillagran/boletera/internal/validation"
)

// Profile prints the current user's profile.
func (a *App) Profile(ctx context.Context) error {
	u, ok := a.session.CurrentUser()
	if !ok {
		return session.ErrNotAuthenticated
	}

	printlnFn("Name:      ", u.FirstName, u.LastName)
	printlnFn("Email:     ", u.Email)
	printlnFn("Document:  ", u.DocumentID)
	printlnFn("Phone:     ", u.Phone)
	printlnFn("Birth date:", u.BirthDate)
	printlnFn("Role:      ", u.Role)
	if u.ClientType != "" {
		printlnFn("Client type:", u.ClientType)
	}
	return nil
}

// WhoAmI prints a one-line session summary, including the token's expiry
// when the token is a readable JWT.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.session.CurrentUser()
	if !ok {
		return session.ErrNotAuthenticated
	}

	printlnFn(fmt.Sprintf("%s (%s)", u.Email, u.Role))
	if exp, ok := a.session.TokenExpiry(); ok {
		printlnFn("Token expires:", exp.Format(time.RFC3339))
	}
	return nil
}

// EditProfile prompts for new profile values, keeping the current value when
// the user enters a blank line, and pushes the update to the backend. The
// session's user record is replaced with the backend's response.
func (a *App) EditProfile(ctx context.Context) error {
	u, ok := a.session.CurrentUser()
	if !ok {
		return session.ErrNotAuthenticated
	}

	firstName, err := getSimpleText(a.reader, fmt.Sprintf("First name [%s]", u.FirstName), os.Stdout)
	if err != nil {
		return err
	}
	if firstName == "" {
		firstName = u.FirstName
	}

	lastName, err := getSimpleText(a.reader, fmt.Sprintf("Last name [%s]", u.LastName), os.Stdout)
	if err != nil {
		return err
	}
	if lastName == "" {
		lastName = u.LastName
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", u.Email), os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = u.Email
	}
	if !validation.Email(email) {
		return errors.New("Formato de email inválido")
	}

	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", u.Phone), os.Stdout)
	if err != nil {
		return err
	}
	if phone == "" {
		phone = u.Phone
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

	updated, err := a.users.UpdateProfile(ctx, models.UpdateProfileRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phoneNum,
	})
	if err != nil {
		return err
	}

	if err := a.session.UpdateUser(ctx, *updated); err != nil {
		return err
	}
	printlnFn("Profile updated.")
	return nil
}

// ChangePassword asks for the current and the new password and submits the
// change. Both byte slices are wiped before returning.
func (a *App) ChangePassword(ctx context.Context) error {
	if !a.session.IsAuthenticated() {
		return session.ErrNotAuthenticated
	}

	current, err := getPassword(os.Stdout, "Current password: ")
	if err != nil {
		return err
	}
	defer common.WipeBytes(current)

	next, err := getPassword(os.Stdout, "New password: ")
	if err != nil {
		return err
	}
	defer common.WipeBytes(next)
	if ok, msg := validation.Password(string(next)); !ok {
		return errors.New(msg)
	}

	msg, err := a.users.ChangePassword(ctx, string(current), string(next))
	if err != nil {
		return err
	}
	printlnFn(msg)
	return nil
}
