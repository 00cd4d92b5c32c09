package startup

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/thatsimonsguy/aq-monitor/internal/config"
)

// WriteStartupScript writes a boot script that drives the LED pin low before
// the monitor starts.
func WriteStartupScript(cfg config.Config) error {
	lines := []string{"#!/bin/bash", "", "# Air quality monitor GPIO configuration at boot", ""}
	if cfg.LEDGPIO > 0 {
		lines = append(lines, "# status_led", fmt.Sprintf("pinctrl set %d op pn dl", cfg.LEDGPIO), "")
	}

	contents := strings.Join(lines, "\n") + "\n"
	return os.WriteFile(cfg.BootScriptFilePath, []byte(contents), 0755)
}

func GPIOUnit(cfg config.Config) string {
	return fmt.Sprintf(`[Unit]
Description=Configure air quality monitor GPIO pins at boot
After=network.target

[Service]
Type=oneshot
Environment=PATH=/usr/local/bin:/usr/bin:/bin
ExecStart=%s
RemainAfterExit=true

[Install]
WantedBy=multi-user.target
`, cfg.BootScriptFilePath)
}

func InstallStartupService(cfg config.Config) error {
	return os.WriteFile(cfg.GPIOServicePath, []byte(GPIOUnit(cfg)), 0644)
}

// RunStartupScript applies the boot script immediately.
func RunStartupScript(cfg config.Config) error {
	cmd := exec.Command("/bin/bash", cfg.BootScriptFilePath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// MainUnit renders the monitor's own unit. With the systemd watchdog the unit
// is Type=notify and WatchdogSec follows the configured timeout. The hardware
// watchdog device is root-only, so that unit runs without a User= line.
func MainUnit(cfg config.Config) string {
	gpioUnitName := filepath.Base(cfg.GPIOServicePath)

	serviceType := "simple"
	watchdog := ""
	if cfg.Watchdog == config.WatchdogSystemd {
		serviceType = "notify"
		watchdog = fmt.Sprintf("WatchdogSec=%dms\nNotifyAccess=main\n", cfg.WatchdogTimeoutMs)
	}

	user := ""
	if cfg.Watchdog != config.WatchdogHardware && cfg.ServiceUser != "" {
		user = fmt.Sprintf("User=%s\n", cfg.ServiceUser)
	}

	execCmd := fmt.Sprintf("%s -config-file %s", cfg.BinaryPath, filepath.Join(cfg.WorkingDir, "config.json"))

	return fmt.Sprintf(`[Unit]
Description=Air quality monitor
After=%s
Requires=%s

[Service]
Type=%s
%sWorkingDirectory=%s
ExecStart=%s
Restart=always
RestartSec=5s
%s
[Install]
WantedBy=multi-user.target
`, gpioUnitName, gpioUnitName, serviceType, user, cfg.WorkingDir, execCmd, watchdog)
}

func InstallService(cfg config.Config) error {
	return os.WriteFile(cfg.MainServicePath, []byte(MainUnit(cfg)), 0644)
}
