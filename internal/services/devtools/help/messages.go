package help

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

const (
	keyAvailable   = "help.available"
	keyEntry       = "help.entry"
	keyMissingName = "help.missing_name"
	keyUnknown     = "help.unknown"
	keyCommand     = "help.command"
	keyDescription = "help.description"
	keyPriming     = "help.priming"
)

// English is registered under Und so every unmatched locale resolves to it.
var translations = map[language.Tag]map[string]string{
	language.Und: {
		keyAvailable:   "Available commands:",
		keyEntry:       "%d. %s - %s",
		keyMissingName: "Please provide a command name.",
		keyUnknown:     "Unknown command: %s",
		keyCommand:     "Command: %s",
		keyDescription: "Description: %s",
		keyPriming:     "Runs %s first to refresh element uids.",
	},
	language.Portuguese: {
		keyAvailable:   "Comandos disponíveis:",
		keyMissingName: "Informe o nome de um comando.",
		keyUnknown:     "Comando desconhecido: %s",
		keyCommand:     "Comando: %s",
		keyDescription: "Descrição: %s",
		keyPriming:     "Executa %s antes para atualizar os uids dos elementos.",
	},
}

var messages = mustCatalog()

func newCatalog() (*catalog.Builder, error) {
	builder := catalog.NewBuilder()
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := builder.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("register %s %q: %w", tag, key, err)
			}
		}
	}
	return builder, nil
}

func mustCatalog() *catalog.Builder {
	builder, err := newCatalog()
	if err != nil {
		panic(err)
	}
	return builder
}
