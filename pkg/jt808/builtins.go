package jt808

// registerBuiltinEncoders wires every standard and supplemental message
// family's encoders into p. Called once by NewPackager.
func registerBuiltinEncoders(p *Packager) {
	registerGeneralResponseEncoders(p)
	registerHeartbeatEncoders(p)
	registerRegistrationEncoders(p)
	registerTerminalParameterEncoders(p)
	registerFillPacketEncoders(p)
	registerUpgradeEncoders(p)
	registerLocationEncoders(p)
	registerPolygonEncoders(p)
	registerMultimediaEncoders(p)
	registerVersionInformationEncoders(p)
	registerDrivingLicenseEncoders(p)
	registerCANBroadcastEncoders(p)
}

// registerBuiltinDecoders wires every standard and supplemental message
// family's decoders into p. Called once by NewParser.
func registerBuiltinDecoders(p *Parser) {
	registerGeneralResponseDecoders(p)
	registerHeartbeatDecoders(p)
	registerRegistrationDecoders(p)
	registerTerminalParameterDecoders(p)
	registerFillPacketDecoders(p)
	registerUpgradeDecoders(p)
	registerLocationDecoders(p)
	registerPolygonDecoders(p)
	registerMultimediaDecoders(p)
	registerVersionInformationDecoders(p)
	registerDrivingLicenseDecoders(p)
	registerCANBroadcastDecoders(p)
}
