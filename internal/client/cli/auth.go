package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/findash/internal/client/tokenstore"
	"github.com/dmitrijs2005/findash/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errAlreadyLoggedIn = errors.New("already logged in")

// Register prompts for a username, an email and a password, creates the
// account and logs in with it. The password is wiped before returning.
// Failures are shown by the auth prompt through the session error.
func (a *App) Register(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Ya iniciaste sesión. Usa 'logout' primero.")
		return errAlreadyLoggedIn
	}

	userName, err := getSimpleText(a.reader, "Nombre de usuario", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Correo electrónico", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	printlnFn("Procesando...")
	if err := a.session.Register(ctx, userName, email, string(password)); err != nil {
		a.log.Info(ctx, "registration failed", "error", err)
		return err
	}
	return nil
}

// Login prompts for email and password and authenticates.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Ya iniciaste sesión. Usa 'logout' primero.")
		return errAlreadyLoggedIn
	}

	email, err := getSimpleText(a.reader, "Correo electrónico", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	printlnFn("Procesando...")
	if err := a.session.Login(ctx, email, string(password)); err != nil {
		a.log.Info(ctx, "login failed", "error", err)
		return err
	}
	return nil
}

// Logout drops the credential and the identity.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// WhoAmI prints the identity and what the credential itself says about its
// lifetime.
func (a *App) WhoAmI(ctx context.Context) error {
	st := a.session.State()
	if st.Identity == nil {
		printlnFn("No has iniciado sesión.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s (%s), id %d", st.Identity.Username, st.Identity.Email, st.Identity.ID))
	if claims, ok := tokenstore.Inspect(st.Credential); ok && !claims.ExpiresAt.IsZero() {
		state := "vigente"
		if claims.Expired(time.Now()) {
			state = "expirada"
		}
		printlnFn(fmt.Sprintf("Sesión %s hasta %s", state, claims.ExpiresAt.Local().Format("02/01/2006 15:04")))
	}
	if s, ok := a.store.(*tokenstore.MetadataStore); ok {
		if at, found, err := s.UpdatedAt(ctx); err == nil && found {
			printlnFn("Credencial guardada el " + at.Local().Format("02/01/2006 15:04"))
		}
	}
	return nil
}
