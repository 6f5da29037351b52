package format

import "github.com/joshuapare/ppkit/internal/buf"

// PowerTuneTable is the fixed 48-byte ATOM_Polaris_PowerTune_Table. It has
// no count prefix. Power values are in W, temperatures in °C, both in the
// firmware's native integer units.
//
//	Offset  Size  Description
//	------  ----  ---------------------------------------------
//	 0x00    1    revision ID
//	 0x01   38    nineteen u16 limits (TDP .. PLX temperature)
//	 0x27    7    I2C address/line bytes
//	 0x2E    2    reserved
type PowerTuneTable struct {
	Revision                  uint8
	TDP                       uint16
	ConfigurableTDP           uint16
	TDC                       uint16
	BatteryPowerLimit         uint16
	SmallPowerLimit           uint16
	LowCACLeakage             uint16
	HighCACLeakage            uint16
	MaximumPowerDeliveryLimit uint16
	TjMax                     uint16
	PowerTuneDataSetID        uint16
	EDCLimit                  uint16
	SoftwareShutdownTemp      uint16
	ClockStretchAmount        uint16
	TemperatureLimitHotspot   uint16
	TemperatureLimitLiquid1   uint16
	TemperatureLimitLiquid2   uint16
	TemperatureLimitVrVddc    uint16
	TemperatureLimitVrMvdd    uint16
	TemperatureLimitPlx       uint16
	Liquid1I2CAddress         uint8
	Liquid2I2CAddress         uint8
	LiquidI2CLine             uint8
	VrI2CAddress              uint8
	VrI2CLine                 uint8
	PlxI2CAddress             uint8
	PlxI2CLine                uint8
	Reserved                  uint16
}

// DecodePowerTuneTable reads the table at off.
func DecodePowerTuneTable(b []byte, off int) (PowerTuneTable, error) {
	if err := need("powertune table", b, off, PowerTuneTableSize); err != nil {
		return PowerTuneTable{}, err
	}
	var t PowerTuneTable
	c := buf.NewCursor(b, off)
	t.Revision = c.U8()
	for _, f := range t.words() {
		*f = c.U16()
	}
	for _, f := range t.i2c() {
		*f = c.U8()
	}
	t.Reserved = c.U16()
	return t, wrap("powertune table", c.Err)
}

// Size implements Encoder.
func (t PowerTuneTable) Size() int { return PowerTuneTableSize }

// Encode implements Encoder.
func (t PowerTuneTable) Encode(dst []byte, off int) error {
	if err := need("powertune table", dst, off, PowerTuneTableSize); err != nil {
		return err
	}
	c := buf.NewCursor(dst, off)
	c.PutU8(t.Revision)
	for _, f := range t.words() {
		c.PutU16(*f)
	}
	for _, f := range t.i2c() {
		c.PutU8(*f)
	}
	c.PutU16(t.Reserved)
	return wrap("powertune table", c.Err)
}

// words lists the u16 limits in storage order.
func (t *PowerTuneTable) words() []*uint16 {
	return []*uint16{
		&t.TDP,
		&t.ConfigurableTDP,
		&t.TDC,
		&t.BatteryPowerLimit,
		&t.SmallPowerLimit,
		&t.LowCACLeakage,
		&t.HighCACLeakage,
		&t.MaximumPowerDeliveryLimit,
		&t.TjMax,
		&t.PowerTuneDataSetID,
		&t.EDCLimit,
		&t.SoftwareShutdownTemp,
		&t.ClockStretchAmount,
		&t.TemperatureLimitHotspot,
		&t.TemperatureLimitLiquid1,
		&t.TemperatureLimitLiquid2,
		&t.TemperatureLimitVrVddc,
		&t.TemperatureLimitVrMvdd,
		&t.TemperatureLimitPlx,
	}
}

// i2c lists the address/line bytes in storage order.
func (t *PowerTuneTable) i2c() []*uint8 {
	return []*uint8{
		&t.Liquid1I2CAddress,
		&t.Liquid2I2CAddress,
		&t.LiquidI2CLine,
		&t.VrI2CAddress,
		&t.VrI2CLine,
		&t.PlxI2CAddress,
		&t.PlxI2CLine,
	}
}
