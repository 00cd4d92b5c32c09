package ens160

// DefaultAddress is the ENS160 I2C address with ADDR pulled high.
const DefaultAddress = 0x53

const (
	regOperatingMode = 0x10
	regCommand       = 0x12
	regEnvIn         = 0x13 // RH_L, RH_H, T_L, T_H
	regState         = 0x20
	regAQI           = 0x21
	regTVOC          = 0x22
	regECO2          = 0x24
)

// Operating modes.
const (
	ModeDeepSleep uint8 = 0x00
	ModeIdle      uint8 = 0x01
	ModeStandard  uint8 = 0x02
	ModeReset     uint8 = 0xF0
)

const (
	cmdNOP    = 0x00
	cmdClrGPR = 0xCC
)

// StateSize is the length of the calibration state window.
const StateSize = 6
