// Package wizard drives the interactive creation of a jelastic.yml
// settings file.
package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

// Answers holds all user responses from the wizard.
type Answers struct {
	AppURL   string
	AppID    string
	CacheDir string
	CacheTTL string
	SSHGate  string
	SSHPort  string

	GroupByNodeType  bool
	GroupByNodeClass bool
}

// Run executes the interactive wizard and returns the user's answers.
func Run(detection Detection) (*Answers, error) {
	answers := &Answers{
		AppURL:           detection.AppURL,
		AppID:            "cluster",
		CacheDir:         "~/.ansible/tmp/jelastic",
		CacheTTL:         "300",
		SSHGate:          "localhost",
		SSHPort:          "22",
		GroupByNodeType:  true,
		GroupByNodeClass: true,
	}

	desc := "Endpoint of the provider REST API, e.g. https://app.paas.example/1.0"
	if detection.CredentialsSet {
		desc += "\n\nCredentials found in JELASTIC_USER_ID / JELASTIC_USER_PASSWORD."
	} else {
		desc += "\n\nRemember to export JELASTIC_USER_ID and JELASTIC_USER_PASSWORD;\ncredentials are never written to the config file."
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Provider API URL").
				Description(desc).
				Validate(required("app_url")).
				Value(&answers.AppURL),
			huh.NewInput().
				Title("Application id").
				Validate(required("app_id")).
				Value(&answers.AppID),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Cache directory").
				Description("Snapshot and index files are stored here").
				Value(&answers.CacheDir),
			huh.NewInput().
				Title("Cache TTL in seconds").
				Validate(positiveInt("cache_ttl")).
				Value(&answers.CacheTTL),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("SSH gateway host").
				Description("Published as ansible_ssh_host for every node").
				Value(&answers.SSHGate),
			huh.NewInput().
				Title("SSH gateway port").
				Validate(positiveInt("ssh_port")).
				Value(&answers.SSHPort),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Group hosts by node type?").
				Value(&answers.GroupByNodeType),
			huh.NewConfirm().
				Title("Group hosts by mapped node class?").
				Description("Classes come from the node_classes prefix table in the config").
				Value(&answers.GroupByNodeClass),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return answers, nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func positiveInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive number", field)
		}
		return nil
	}
}
