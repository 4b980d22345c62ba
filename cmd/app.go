// Package cmd implements the CLI application to manage a pulley stock
// ledger: recording movements, projecting stock, and producing tallies,
// invoices and activity reports.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/shaikhmech/pulley"
)

// Commands is the list of subcommands a main package registers.
var Commands = []subcommands.Command{
	&inCmd{},
	&outCmd{},
	&editCmd{},
	&rmCmd{},
	&txCmd{},
	&stockCmd{},
	&suggestCmd{},
	&tallyCmd{},
	&billCmd{},
	&activityCmd{},
	&clientCmd{},
	&clientsCmd{},
	&configCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file (JSONL format)")
var clientsFile = flag.String("clients-file", "clients.jsonl", "Path to the clients file (JSONL format)")
var settingsFile = flag.String("settings-file", "settings.json", "Path to the settings file")

// loadLedger loads the app ledger file, empty if it does not exist yet.
func loadLedger() (*pulley.Ledger, error) {
	if _, err := os.Stat(*ledgerFile); os.IsNotExist(err) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
	}
	return pulley.LoadLedger(*ledgerFile)
}

// saveLedger persists the app ledger file.
func saveLedger(l *pulley.Ledger) error {
	return pulley.SaveLedger(*ledgerFile, l)
}

// loadClients loads the app clients file, empty if it does not exist yet.
func loadClients() (*pulley.ClientBook, error) {
	return pulley.LoadClients(*clientsFile)
}

// saveClients persists the app clients file.
func saveClients(b *pulley.ClientBook) error {
	return pulley.SaveClients(*clientsFile, b)
}

// loadSettings loads the app settings file, defaults if it does not exist yet.
func loadSettings() (pulley.Settings, error) {
	return pulley.LoadSettings(*settingsFile)
}

// saveSettings persists the app settings file.
func saveSettings(s pulley.Settings) error {
	return pulley.SaveSettings(*settingsFile, s)
}

// fail prints an error to stderr and returns the failure exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
