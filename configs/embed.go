package configs

import _ "embed"

// ApplicationYAML is the default properties file, used when PROPERTIES_FILE_PATH does not point to a readable file.
//
//go:embed application.yml
var ApplicationYAML []byte

// MessagesYAML is the default message catalogue.
//
//go:embed messages.yml
var MessagesYAML []byte
