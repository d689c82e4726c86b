package types

// Version is the build version of bumper, overridable via ldflags.
var Version = "dev"
