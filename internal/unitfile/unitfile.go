// Package unitfile renders and parses ping service unit definitions.
package unitfile

import (
	"fmt"
	"time"

	"gopkg.in/ini.v1"
)

// pingSection is an X- section ignored by systemd. It carries the original
// target address verbatim, since the unit name encoding is not a lossless
// inverse for IPv6 addresses.
const pingSection = "X-Ping"

// formatKeyValue formats a key-value pair as "key=value".
func formatKeyValue(key, value string) string {
	return fmt.Sprintf("%s=%s\n", key, value)
}

// Render generates the unit definition for a continuous ping to target.
// The unit depends on network readiness, restarts unconditionally with the
// given delay, and installs into the multi-user target.
func Render(target, pingPath string, restartDelay time.Duration) string {
	content := "[Unit]\n"
	content += formatKeyValue("Description", "Continuous ping to "+target)
	content += formatKeyValue("After", "network-online.target")
	content += formatKeyValue("Wants", "network-online.target")

	content += "\n[Service]\n"
	content += formatKeyValue("ExecStart", fmt.Sprintf("%s %s", pingPath, target))
	content += formatKeyValue("Restart", "always")
	content += formatKeyValue("RestartSec", fmt.Sprintf("%d", int(restartDelay.Seconds())))

	content += "\n[Install]\n"
	content += formatKeyValue("WantedBy", "multi-user.target")

	content += "\n[" + pingSection + "]\n"
	content += formatKeyValue("Target", target)

	return content
}

// Target extracts the original target address from unit file content.
// Returns an error when the content is not parseable or carries no target
// metadata; callers fall back to decoding the unit name for display.
func Target(content []byte) (string, error) {
	unitConfig, err := ini.Load(content)
	if err != nil {
		return "", fmt.Errorf("error parsing unit file: %w", err)
	}

	section, err := unitConfig.GetSection(pingSection)
	if err != nil {
		return "", fmt.Errorf("unit file has no %s section: %w", pingSection, err)
	}

	key, err := section.GetKey("Target")
	if err != nil || key.Value() == "" {
		return "", fmt.Errorf("unit file has no target metadata")
	}

	return key.Value(), nil
}
