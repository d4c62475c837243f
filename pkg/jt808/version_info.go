package jt808

import (
	"encoding/binary"
	"fmt"
)

// MsgIDVersionInformation reports detailed terminal hardware/firmware
// identity (0x0205). Not part of the core JT/T 808 catalog; supported
// by some deployments for fleet inventory purposes.
const MsgIDVersionInformation uint16 = 0x0205

// VersionInformation is the 0x0205 body: terminal firmware, hardware
// and SIM identity, plus lifetime odometer/fuel totals.
type VersionInformation struct {
	Version     string
	RelDate     string
	CPUID       []byte
	Model       string
	IMEI        string
	IMSI        string
	ICCID       string
	CarModel    uint16
	VIN         string
	TotalMileage uint32 // meters
	TotalFuel    uint32 // 1/100 L
}

func encodeVersionInformation(pp *ProtocolParameter) ([]byte, error) {
	v := pp.Send.VersionInfo
	var out []byte
	var err error
	if out, err = putLenPrefixed(out, v.Version); err != nil {
		return nil, err
	}
	if out, err = putLenPrefixed(out, v.RelDate); err != nil {
		return nil, err
	}
	if len(v.CPUID) > 0xFF {
		return nil, fmt.Errorf("cpu id too long: %d bytes", len(v.CPUID))
	}
	out = append(out, byte(len(v.CPUID)))
	out = append(out, v.CPUID...)
	if out, err = putLenPrefixed(out, v.Model); err != nil {
		return nil, err
	}
	if out, err = putLenPrefixed(out, v.IMEI); err != nil {
		return nil, err
	}
	if out, err = putLenPrefixed(out, v.IMSI); err != nil {
		return nil, err
	}
	if out, err = putLenPrefixed(out, v.ICCID); err != nil {
		return nil, err
	}
	out = putUint16(out, v.CarModel)
	if out, err = putLenPrefixed(out, v.VIN); err != nil {
		return nil, err
	}
	out = putUint32(out, v.TotalMileage)
	out = putUint32(out, v.TotalFuel)
	return out, nil
}

func decodeVersionInformation(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	var v VersionInformation
	var err error
	rest := body
	if v.Version, rest, err = takeLenPrefixed(rest); err != nil {
		return err
	}
	if v.RelDate, rest, err = takeLenPrefixed(rest); err != nil {
		return err
	}
	if len(rest) < 1 {
		return fmt.Errorf("version information missing cpu id length")
	}
	n := int(rest[0])
	if len(rest) < 1+n {
		return fmt.Errorf("version information cpu id truncated")
	}
	v.CPUID = append([]byte(nil), rest[1:1+n]...)
	rest = rest[1+n:]
	if v.Model, rest, err = takeLenPrefixed(rest); err != nil {
		return err
	}
	if v.IMEI, rest, err = takeLenPrefixed(rest); err != nil {
		return err
	}
	if v.IMSI, rest, err = takeLenPrefixed(rest); err != nil {
		return err
	}
	if v.ICCID, rest, err = takeLenPrefixed(rest); err != nil {
		return err
	}
	if len(rest) < 2 {
		return fmt.Errorf("version information missing car model")
	}
	v.CarModel = binary.BigEndian.Uint16(rest[0:2])
	rest = rest[2:]
	if v.VIN, rest, err = takeLenPrefixed(rest); err != nil {
		return err
	}
	if len(rest) < 8 {
		return fmt.Errorf("version information missing mileage/fuel totals")
	}
	v.TotalMileage = binary.BigEndian.Uint32(rest[0:4])
	v.TotalFuel = binary.BigEndian.Uint32(rest[4:8])
	pp.Parse.VersionInfo = v
	return nil
}

func registerVersionInformationEncoders(p *Packager) {
	p.handlers[MsgIDVersionInformation] = encodeVersionInformation
}

func registerVersionInformationDecoders(p *Parser) {
	p.handlers[MsgIDVersionInformation] = decodeVersionInformation
}
