package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"job-monitor/internal/config"

	"github.com/zalando/go-keyring"
)

const (
	// "Service" groups this app's secrets in the OS keychain.
	KeyringService = "jobmonitor"

	envPassword = "SMTP_PASSWORD"
)

// GetSMTPPassword tries the OS keyring first, then the SMTP_PASSWORD
// environment variable (a .env file loaded by the CLI counts).
func GetSMTPPassword(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		pw, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}

	if pw := strings.TrimSpace(os.Getenv(envPassword)); pw != "" {
		return pw, nil
	}

	return "", errors.New("SMTP password not found (set it in keychain via `jobmonitor smtp set-password` or export SMTP_PASSWORD)")
}

func SetSMTPPassword(keyringAccount string, password string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, password)
}

func DeleteSMTPPassword(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}

func SMTPKeyringAccount(cfg config.Config) string {
	return fmt.Sprintf(
		"jobmonitor:smtp:%s@%s",
		cfg.SMTP.Username,
		cfg.SMTP.Host,
	)
}
