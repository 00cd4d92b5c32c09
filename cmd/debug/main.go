package main

import (
	"flag"
	"fmt"
	"os"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/thatsimonsguy/aq-monitor/db"
	"github.com/thatsimonsguy/aq-monitor/internal/config"
	"github.com/thatsimonsguy/aq-monitor/internal/ens160"
	"github.com/thatsimonsguy/aq-monitor/internal/pinctrl"
	"github.com/thatsimonsguy/aq-monitor/internal/store"
	"github.com/thatsimonsguy/aq-monitor/system/startup"
)

func main() {
	DebugCLI()
}

func DebugCLI() {
	var dbPath, dataDir, backend, command, configFile, bus string
	var address uint
	var pin int
	flag.StringVar(&dbPath, "db", "data/aq-monitor.db", "Path to the SQLite database file")
	flag.StringVar(&dataDir, "data-dir", "data", "Directory of the file store")
	flag.StringVar(&backend, "store", config.StoreFile, "Store backend: file or sqlite")
	flag.StringVar(&command, "cmd", "", "Command to run: show-last, show-calibration, clear-calibration, reset-sensor, led-state, install-service")
	flag.StringVar(&configFile, "config-file", "config.json", "Monitor config file (install-service)")
	flag.StringVar(&bus, "bus", "", "I2C bus name (reset-sensor)")
	flag.UintVar(&address, "address", ens160.DefaultAddress, "ENS160 I2C address (reset-sensor)")
	flag.IntVar(&pin, "pin", 0, "GPIO pin (led-state)")
	help := flag.Bool("help", false, "Show help")
	flag.Parse()

	if *help || command == "" {
		fmt.Println("\nUsage of aq-debug:")
		fmt.Println("  -cmd string\tCommand to run: show-last, show-calibration, clear-calibration, reset-sensor, led-state, install-service")
		fmt.Println("  -store string\tStore backend: file or sqlite (default 'file')")
		fmt.Println("  -data-dir string\tDirectory of the file store (default 'data')")
		fmt.Println("  -db string\tPath to the SQLite database file (default 'data/aq-monitor.db')")
		fmt.Println("  -bus string\tI2C bus name for reset-sensor (default first bus)")
		fmt.Println("  -address uint\tENS160 I2C address for reset-sensor (default 0x53)")
		fmt.Println("  -pin int\tGPIO pin for led-state")
		fmt.Println("  -config-file string\tMonitor config file for install-service")
		fmt.Println("  -help\tShow this help message")
		os.Exit(0)
	}

	var err error
	switch command {
	case "show-last":
		err = showLast(backend, dbPath, dataDir)
	case "show-calibration":
		err = showCalibration(backend, dbPath, dataDir)
	case "clear-calibration":
		if backend == config.StoreSQLite {
			err = db.ClearCalibrationCLI(dbPath)
		} else {
			err = clearFileCalibration(dataDir)
		}
	case "reset-sensor":
		err = resetSensor(bus, uint16(address))
	case "led-state":
		err = ledState(pin)
	case "install-service":
		err = installService(configFile)
	default:
		fmt.Println("Invalid command")
		os.Exit(1)
	}

	if err != nil {
		fmt.Printf("Command %s failed: %v\n", command, err)
		os.Exit(1)
	}
	fmt.Printf("Command %s completed successfully\n", command)
}

func showLast(backend, dbPath, dataDir string) error {
	if backend == config.StoreSQLite {
		return db.ShowLastReadingCLI(dbPath, os.Stdout)
	}
	s, err := store.New(dataDir)
	if err != nil {
		return err
	}
	r, err := s.LoadLastReading()
	if err != nil {
		return err
	}
	fmt.Println(r)
	return nil
}

func showCalibration(backend, dbPath, dataDir string) error {
	if backend == config.StoreSQLite {
		return db.ShowCalibrationCLI(dbPath, os.Stdout)
	}
	s, err := store.New(dataDir)
	if err != nil {
		return err
	}
	state, err := s.LoadCalibration()
	if err != nil {
		return err
	}
	fmt.Printf("% x\n", state)
	return nil
}

func clearFileCalibration(dataDir string) error {
	s, err := store.New(dataDir)
	if err != nil {
		return err
	}
	return s.ClearCalibration()
}

// resetSensor runs the full ENS160 reset sequence. The monitor must be stopped
// first; it owns the bus while running.
func resetSensor(busName string, address uint16) error {
	if _, err := host.Init(); err != nil {
		return err
	}
	bus, err := i2creg.Open(busName)
	if err != nil {
		return err
	}
	defer bus.Close()

	dev := ens160.New(bus, address)
	if err := dev.Reset(); err != nil {
		return err
	}
	mode, err := dev.OperatingMode()
	if err != nil {
		return err
	}
	fmt.Printf("ENS160 at %#x reset, operating mode %#x\n", address, mode)
	return nil
}

func ledState(pin int) error {
	if pin <= 0 {
		return fmt.Errorf("-pin is required")
	}
	ps, err := pinctrl.ReadPin(pin)
	if err != nil {
		return err
	}
	fmt.Printf("GPIO%d mode=%s pull=%s drive=%s level=%s\n", ps.Pin, ps.Mode, ps.Pull, ps.Drive, ps.Level)
	return nil
}

func installService(configFile string) error {
	cfg := config.LoadFile(configFile)

	if err := startup.WriteStartupScript(cfg); err != nil {
		return err
	}
	// apply the pin setup now instead of waiting for the next boot
	if err := startup.RunStartupScript(cfg); err != nil {
		return fmt.Errorf("boot script %s failed: %w", cfg.BootScriptFilePath, err)
	}
	if err := startup.InstallStartupService(cfg); err != nil {
		return err
	}
	return startup.InstallService(cfg)
}
