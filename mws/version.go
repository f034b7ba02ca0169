package mws

// Version of this library, reported in the User-Agent header.
const Version = "0.3.0"

// DefaultUserAgent identifies the library to MWS.
const DefaultUserAgent = "mws-sdk-go/" + Version + " (Language=Go)"
