package display

import "github.com/thatsimonsguy/aq-monitor/internal/model"

// 32x32 one-bit icons, rows of 4 bytes, most significant bit leftmost.
const iconSize = 32

var icons = map[model.Icon][]byte{
	model.IconExcellent: {
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0xff, 0xff, 0x00,
		0x01, 0xe0, 0x07, 0x80,
		0x03, 0x80, 0x01, 0xc0,
		0x07, 0x00, 0x00, 0xe0,
		0x0c, 0x00, 0x00, 0x30,
		0x1c, 0x00, 0x00, 0x38,
		0x38, 0x00, 0x00, 0x1c,
		0x30, 0x00, 0x00, 0x0c,
		0x30, 0x70, 0x0e, 0x0c,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x40, 0x02, 0x06,
		0x60, 0x60, 0x06, 0x06,
		0x30, 0x30, 0x0c, 0x0c,
		0x30, 0x1c, 0x38, 0x0c,
		0x38, 0x0f, 0xf0, 0x1c,
		0x1c, 0x03, 0xc0, 0x38,
		0x0c, 0x00, 0x00, 0x30,
		0x07, 0x00, 0x00, 0xe0,
		0x03, 0x80, 0x01, 0xc0,
		0x01, 0xe0, 0x07, 0x80,
		0x00, 0xff, 0xff, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0x00, 0x00, 0x00,
	},
	model.IconGood: {
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0xff, 0xff, 0x00,
		0x01, 0xe0, 0x07, 0x80,
		0x03, 0x80, 0x01, 0xc0,
		0x07, 0x00, 0x00, 0xe0,
		0x0c, 0x00, 0x00, 0x30,
		0x1c, 0x00, 0x00, 0x38,
		0x38, 0x00, 0x00, 0x1c,
		0x30, 0x00, 0x00, 0x0c,
		0x30, 0x70, 0x0e, 0x0c,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x40, 0x02, 0x06,
		0x30, 0x78, 0x1e, 0x0c,
		0x30, 0x3f, 0xfc, 0x0c,
		0x38, 0x07, 0xe0, 0x1c,
		0x1c, 0x00, 0x00, 0x38,
		0x0c, 0x00, 0x00, 0x30,
		0x07, 0x00, 0x00, 0xe0,
		0x03, 0x80, 0x01, 0xc0,
		0x01, 0xe0, 0x07, 0x80,
		0x00, 0xff, 0xff, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0x00, 0x00, 0x00,
	},
	model.IconModerate: {
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0xff, 0xff, 0x00,
		0x01, 0xe0, 0x07, 0x80,
		0x03, 0x80, 0x01, 0xc0,
		0x07, 0x00, 0x00, 0xe0,
		0x0c, 0x00, 0x00, 0x30,
		0x1c, 0x00, 0x00, 0x38,
		0x38, 0x00, 0x00, 0x1c,
		0x30, 0x00, 0x00, 0x0c,
		0x30, 0x70, 0x0e, 0x0c,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x30, 0x7f, 0xfe, 0x0c,
		0x30, 0x7f, 0xfe, 0x0c,
		0x38, 0x00, 0x00, 0x1c,
		0x1c, 0x00, 0x00, 0x38,
		0x0c, 0x00, 0x00, 0x30,
		0x07, 0x00, 0x00, 0xe0,
		0x03, 0x80, 0x01, 0xc0,
		0x01, 0xe0, 0x07, 0x80,
		0x00, 0xff, 0xff, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0x00, 0x00, 0x00,
	},
	model.IconPoor: {
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0xff, 0xff, 0x00,
		0x01, 0xe0, 0x07, 0x80,
		0x03, 0x80, 0x01, 0xc0,
		0x07, 0x00, 0x00, 0xe0,
		0x0c, 0x00, 0x00, 0x30,
		0x1c, 0x00, 0x00, 0x38,
		0x38, 0x00, 0x00, 0x1c,
		0x30, 0x00, 0x00, 0x0c,
		0x30, 0x70, 0x0e, 0x0c,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x70, 0x0e, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x0f, 0xf0, 0x06,
		0x30, 0x1f, 0xf8, 0x0c,
		0x30, 0x70, 0x0e, 0x0c,
		0x38, 0x60, 0x06, 0x1c,
		0x1c, 0x00, 0x00, 0x38,
		0x0c, 0x00, 0x00, 0x30,
		0x07, 0x00, 0x00, 0xe0,
		0x03, 0x80, 0x01, 0xc0,
		0x01, 0xe0, 0x07, 0x80,
		0x00, 0xff, 0xff, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0x00, 0x00, 0x00,
	},
	model.IconUnhealthy: {
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0xff, 0xff, 0x00,
		0x01, 0xe0, 0x07, 0x80,
		0x03, 0x80, 0x01, 0xc0,
		0x07, 0x00, 0x00, 0xe0,
		0x0c, 0x00, 0x00, 0x30,
		0x1c, 0x00, 0x00, 0x38,
		0x38, 0x00, 0x00, 0x1c,
		0x30, 0x00, 0x00, 0x0c,
		0x30, 0x88, 0x11, 0x0c,
		0x60, 0x50, 0x0a, 0x06,
		0x60, 0x20, 0x04, 0x06,
		0x60, 0x50, 0x0a, 0x06,
		0x60, 0x88, 0x11, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x00, 0x00, 0x06,
		0x60, 0x03, 0xc0, 0x06,
		0x60, 0x0f, 0xf0, 0x06,
		0x30, 0x1c, 0x38, 0x0c,
		0x30, 0x30, 0x0c, 0x0c,
		0x38, 0x60, 0x06, 0x1c,
		0x1c, 0x40, 0x02, 0x38,
		0x0c, 0x00, 0x00, 0x30,
		0x07, 0x00, 0x00, 0xe0,
		0x03, 0x80, 0x01, 0xc0,
		0x01, 0xe0, 0x07, 0x80,
		0x00, 0xff, 0xff, 0x00,
		0x00, 0x1f, 0xf8, 0x00,
		0x00, 0x00, 0x00, 0x00,
	},
}
