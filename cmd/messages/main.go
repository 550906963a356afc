// Command messages lists the localized message templates embedded in the
// catalog bundle, for translators reviewing a locale. It prints the
// resolved namespace sorted by key and exits non-zero when the locale is
// missing translations present in the base locale.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/louisbranch/attest/internal/platform/config"
	"github.com/louisbranch/attest/internal/platform/i18n/catalog"
)

type appConfig struct {
	Locale    string `env:"MESSAGES_LOCALE" envDefault:"en-US"`
	Namespace string `env:"MESSAGES_NAMESPACE" envDefault:"fact"`
}

func main() {
	log.SetPrefix("[MESSAGES] ")

	var cfg appConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("parse env: %v", err)
	}

	bundle := catalog.Default()
	if !bundle.HasLocale(cfg.Locale) {
		log.Printf("locale %s has no catalog, falling back to %s", cfg.Locale, catalog.BaseLocale)
	}

	resolved, messages := bundle.NamespaceMessagesWithFallback(cfg.Locale, cfg.Namespace)
	if len(messages) == 0 {
		config.Exitf("namespace %q has no messages in any locale", cfg.Namespace)
	}

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Printf("%s (%s)\n", cfg.Namespace, resolved)
	for _, key := range keys {
		fmt.Printf("  %s: %s\n", key, messages[key])
	}

	missing := 0
	for key := range bundle.NamespaceMessages(catalog.BaseLocale, cfg.Namespace) {
		if _, ok := messages[key]; !ok {
			log.Printf("missing translation: %s", key)
			missing++
		}
	}
	if missing > 0 {
		os.Exit(1)
	}
}
