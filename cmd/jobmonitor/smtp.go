package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"job-monitor/internal/secrets"

	"github.com/spf13/cobra"
)

var smtpCmd = &cobra.Command{
	Use:   "smtp",
	Short: "Manage SMTP delivery credentials",
}

var smtpSetPasswordCmd = &cobra.Command{
	Use:   "set-password",
	Short: "Store the SMTP password in the OS keychain (reads stdin)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.SMTP.Host == "" {
			return fmt.Errorf("smtp block not configured; set smtp.host first")
		}

		reader := bufio.NewReader(os.Stdin)
		pw, err := reader.ReadString('\n')
		if err != nil && pw == "" {
			return fmt.Errorf("read password from stdin: %w", err)
		}
		pw = strings.TrimRight(pw, "\r\n")

		account := secrets.SMTPKeyringAccount(cfg)
		if err := secrets.SetSMTPPassword(account, pw); err != nil {
			return fmt.Errorf("store password: %w", err)
		}
		fmt.Printf("password stored for %s\n", account)
		return nil
	},
}

func init() {
	smtpCmd.AddCommand(smtpSetPasswordCmd)
	rootCmd.AddCommand(smtpCmd)
}
