package startup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsimonsguy/aq-monitor/internal/config"
)

func testConfig(t *testing.T) config.Config {
	dir := t.TempDir()
	return config.Config{
		LEDGPIO:            17,
		Watchdog:           config.WatchdogHardware,
		WatchdogTimeoutMs:  8388,
		BootScriptFilePath: filepath.Join(dir, "aq-monitor-gpio.sh"),
		GPIOServicePath:    filepath.Join(dir, "aq-monitor-gpio.service"),
		MainServicePath:    filepath.Join(dir, "aq-monitor.service"),
		ServiceUser:        "pi",
		BinaryPath:         "/usr/local/bin/aq-monitor",
		WorkingDir:         "/home/pi/aq-monitor",
	}
}

func TestWriteStartupScript(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, WriteStartupScript(cfg))

	raw, err := os.ReadFile(cfg.BootScriptFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "#!/bin/bash")
	assert.Contains(t, string(raw), "pinctrl set 17 op pn dl")

	info, err := os.Stat(cfg.BootScriptFilePath)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "script must be executable")
}

func TestWriteStartupScript_NoLED(t *testing.T) {
	cfg := testConfig(t)
	cfg.LEDGPIO = 0
	require.NoError(t, WriteStartupScript(cfg))

	raw, err := os.ReadFile(cfg.BootScriptFilePath)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "pinctrl")
}

func TestRunStartupScript(t *testing.T) {
	cfg := testConfig(t)
	cfg.LEDGPIO = 0
	require.NoError(t, WriteStartupScript(cfg))
	assert.NoError(t, RunStartupScript(cfg))

	require.NoError(t, os.WriteFile(cfg.BootScriptFilePath, []byte("#!/bin/bash\nexit 3\n"), 0755))
	assert.Error(t, RunStartupScript(cfg))
}

func TestInstallStartupService(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, InstallStartupService(cfg))

	raw, err := os.ReadFile(cfg.GPIOServicePath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ExecStart="+cfg.BootScriptFilePath)
	assert.Contains(t, string(raw), "Type=oneshot")
}

func TestInstallService_Hardware(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, InstallService(cfg))

	raw, err := os.ReadFile(cfg.MainServicePath)
	require.NoError(t, err)
	unit := string(raw)
	assert.Contains(t, unit, "Type=simple")
	assert.Contains(t, unit, "Requires=aq-monitor-gpio.service")
	assert.Contains(t, unit, "ExecStart=/usr/local/bin/aq-monitor -config-file /home/pi/aq-monitor/config.json")
	assert.NotContains(t, unit, "WatchdogSec")
	assert.NotContains(t, unit, "User=", "/dev/watchdog needs root")
}

func TestMainUnit_Systemd(t *testing.T) {
	cfg := testConfig(t)
	cfg.Watchdog = config.WatchdogSystemd

	unit := MainUnit(cfg)
	assert.Contains(t, unit, "Type=notify")
	assert.Contains(t, unit, "WatchdogSec=8388ms")
	assert.Contains(t, unit, "NotifyAccess=main")
	assert.Contains(t, unit, "User=pi\n")
}

func TestMainUnit_NoWatchdogKeepsUser(t *testing.T) {
	cfg := testConfig(t)
	cfg.Watchdog = config.WatchdogNone

	assert.Contains(t, MainUnit(cfg), "User=pi\nWorkingDirectory=/home/pi/aq-monitor\n")

	cfg.ServiceUser = ""
	assert.NotContains(t, MainUnit(cfg), "User=")
}
