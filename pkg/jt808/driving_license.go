package jt808

import "fmt"

// MsgIDDrivingLicenseData reports an IC-card swipe used by some
// deployments for driver identification (0x0252). Not part of the
// core JT/T 808 catalog.
const MsgIDDrivingLicenseData uint16 = 0x0252

// CardInfo is the driver IC-card data read by the terminal.
type CardInfo struct {
	Name          string
	Country       string
	CitizenID     string
	ExpireDate    string // "yymm"
	DOB           string // "yyyymmdd"
	LicenseType   string
	Gender        string
	LicenseID     string
	IssuingBranch string
	Track         string // raw magnetic-track data, tracks 1-3
}

// DrivingLicenseData is the 0x0252 body.
type DrivingLicenseData struct {
	Card        CardInfo
	LoggedIn    bool
	UploadAllowed bool
}

func encodeDrivingLicenseData(pp *ProtocolParameter) ([]byte, error) {
	d := pp.Send.DrivingLicense
	fields := []string{
		d.Card.Name, d.Card.Country, d.Card.CitizenID, d.Card.ExpireDate,
		d.Card.DOB, d.Card.LicenseType, d.Card.Gender, d.Card.LicenseID,
		d.Card.IssuingBranch, d.Card.Track,
	}
	var out []byte
	var err error
	for _, f := range fields {
		if out, err = putLenPrefixed(out, f); err != nil {
			return nil, err
		}
	}
	out = append(out, boolByte(d.LoggedIn), boolByte(d.UploadAllowed))
	return out, nil
}

func decodeDrivingLicenseData(_ MessageHeader, body []byte, pp *ProtocolParameter) error {
	var d DrivingLicenseData
	rest := body
	var err error
	fields := make([]*string, 0, 10)
	fields = append(fields,
		&d.Card.Name, &d.Card.Country, &d.Card.CitizenID, &d.Card.ExpireDate,
		&d.Card.DOB, &d.Card.LicenseType, &d.Card.Gender, &d.Card.LicenseID,
		&d.Card.IssuingBranch, &d.Card.Track,
	)
	for _, f := range fields {
		if *f, rest, err = takeLenPrefixed(rest); err != nil {
			return err
		}
	}
	if len(rest) < 2 {
		return fmt.Errorf("driving license data missing login/upload flags")
	}
	d.LoggedIn = rest[0] != 0
	d.UploadAllowed = rest[1] != 0
	pp.Parse.DrivingLicense = d
	return nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func registerDrivingLicenseEncoders(p *Packager) {
	p.handlers[MsgIDDrivingLicenseData] = encodeDrivingLicenseData
}

func registerDrivingLicenseDecoders(p *Parser) {
	p.handlers[MsgIDDrivingLicenseData] = decodeDrivingLicenseData
}
