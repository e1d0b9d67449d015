// Command contact submits the Sportloods Oost contact form from a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"sportloods-backend/internal/content"
	"sportloods-backend/pkg/contactclient"
)

// CLI holds the form fields and the endpoint to submit them to.
type CLI struct {
	Endpoint string        `help:"Base URL of the site backend." default:"http://localhost:8080" env:"CONTACT_ENDPOINT"`
	Timeout  time.Duration `help:"Request timeout." default:"15s"`
	Content  string        `help:"Content document to read contact details from (built-in when empty)." env:"CONTENT_PATH"`

	Name    string `help:"Your name." required:""`
	Email   string `help:"Your email address." required:""`
	Phone   string `help:"Phone number (optional)."`
	Subject string `help:"Subject category." default:"Algemeen"`
	Message string `help:"Your message." required:""`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("contact"),
		kong.Description("Send a message through the Sportloods Oost contact form."),
		kong.UsageOnError(),
	)
	kctx.FatalIfErrorf(cli.Run(os.Stdout))
}

// Run submits the form once and prints the resulting banner
func (c *CLI) Run(out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	doc, err := content.Load(c.Content)
	if err != nil {
		return err
	}

	client := contactclient.NewClient(c.Endpoint, contactclient.WithHTTPClient(&http.Client{Timeout: c.Timeout}))
	form := contactclient.NewForm(client, contactclient.OnChange(func(s contactclient.State) {
		if s.Status == contactclient.StatusSending {
			fmt.Fprintln(out, "Verzenden...")
		}
	}))
	form.SetFields(contactclient.Submission{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
	})

	err = form.Submit(ctx)
	state := form.State()
	if banner := RenderBanner(state); banner != "" {
		fmt.Fprintln(out, banner)
	}
	if state.Status == contactclient.StatusError {
		// Offer the other ways to reach the studio
		for _, m := range doc.Contact.Methods {
			fmt.Fprintf(out, "%s: %s\n", m.Label, m.Value)
		}
	}
	return err
}
