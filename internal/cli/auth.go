package cli

import (
	"context"
	"fmt"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn prompts for an email and password and attempts to authenticate.
//
// On success it greets the user; on failure it prints the session manager's
// error and leaves the user signed out. The password buffer is wiped before
// returning. Only I/O errors from the prompts are returned.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if a.session.SignIn(ctx, email, string(password)) {
		fmt.Printf("Welcome back, %s!\n", a.session.CurrentUser().Name)
		return nil
	}

	a.reportFailure()
	return nil
}

// SignUp prompts for a name, email, and password and creates a new account.
// A successful sign-up also signs the user in.
func (a *App) SignUp(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	if a.session.SignUp(ctx, name, email, string(password)) {
		fmt.Printf("Welcome, %s!\n", a.session.CurrentUser().Name)
		return nil
	}

	a.reportFailure()
	return nil
}

// SignOut ends the current session.
func (a *App) SignOut(ctx context.Context) error {
	if a.session.SignOut(ctx) {
		fmt.Println("Signed out.")
		return nil
	}

	a.reportFailure()
	return nil
}

// WhoAmI prints the current account, if any.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Println("Not signed in.")
		return nil
	}
	fmt.Printf("%s <%s> (id %s)\n", u.Name, u.Email, u.ID)
	return nil
}

func (a *App) reportFailure() {
	if err := a.session.LastError(); err != nil {
		fmt.Println(err.Error())
		return
	}
	fmt.Println("Something went wrong.")
}
