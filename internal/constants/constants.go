package constants

// File Names
const (
	DefaultEnvFileName = ".env.example"
	LogFileName        = "envmanager.log"
)

// Folder Names
const (
	AppDirName = "envmanager"
)

// ConfirmToken is the answer that confirms a destructive operation.
// It is compared case-insensitively.
const ConfirmToken = "y"

// FilePerm is the permission used when the backing file is created.
const FilePerm = 0644

// ListRuleWidth is the width of the separator printed around listings.
const ListRuleWidth = 50
