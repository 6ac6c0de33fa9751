package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/yellinzero/funiqai-go/account"
	"github.com/yellinzero/funiqai-go/api"
	"github.com/yellinzero/funiqai-go/auth"
	"github.com/yellinzero/funiqai-go/internal/config"
	"github.com/yellinzero/funiqai-go/internal/utils"
	"github.com/yellinzero/funiqai-go/notify"
	"github.com/yellinzero/funiqai-go/retry"
	"github.com/yellinzero/funiqai-go/routes"
	"github.com/yellinzero/funiqai-go/session"
)

// Demo client: signs in against a FuniqAI backend, persists the session
// the way the web frontend does, and prints the account's profile and
// tenants.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("funiqai client failed")
	}
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Msgf("Recovered from panic: %v", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()
	if *email == "" || *password == "" {
		return errors.New("both -email and -password are required")
	}

	c := config.New()
	displayAppname(c.GetAppName())

	baseURL := c.GetAPIBaseURL()
	store, err := session.NewCookieStore(baseURL)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: time.Duration(c.GetRequestTimeoutSeconds()) * time.Second}
	notifier := notify.NotifierFunc(func(message string) {
		log.Warn().Msg(message)
	})
	navigator := notify.NavigatorFunc(func(path string) {
		log.Info().Str("path", path).Msg("client navigation requested")
	})

	publicClient, err := api.New(baseURL, store,
		api.Public(),
		api.WithHTTPClient(httpClient),
		api.WithNotifier(notifier),
		api.WithNavigator(navigator),
	)
	if err != nil {
		return err
	}
	client, err := api.New(baseURL, store,
		api.WithHTTPClient(httpClient),
		api.WithNotifier(notifier),
		api.WithNavigator(navigator),
	)
	if err != nil {
		return err
	}

	ctx := context.Background()

	login, err := auth.NewService(publicClient).Login(ctx, auth.LoginRequest{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		if httpErr, ok := api.AsHttpError(err); ok && httpErr.IsCode(api.CodeAccountNotActive) {
			log.Warn().Str("page", routes.ActivatePage).Msg("account not activated, visit the activation page")
		}
		return err
	}
	if login.Data == nil {
		return errors.New("login returned no token")
	}
	if err := store.SetAuth(session.Session{AccessToken: login.Data.AccessToken}); err != nil {
		return err
	}
	log.Info().Msg("signed in")

	accounts := account.NewService(client)

	info, err := accounts.Info(ctx)
	if err != nil {
		return err
	}
	if info.Data != nil {
		fmt.Printf("Account: %s <%s> (status %s, role %s)\n",
			info.Data.Name, info.Data.Email, info.Data.Status, utils.Value(info.Data.Role))
	}

	tenants, err := retry.Do(ctx, retry.DefaultConfig(), func(ctx context.Context) (*api.Result[[]account.Tenant], error) {
		return accounts.Tenants(ctx)
	})
	if err != nil {
		return err
	}
	if tenants.Data != nil {
		for _, t := range *tenants.Data {
			fmt.Printf("Tenant: %s (%s)\n", t.Name, t.ID)
		}
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
