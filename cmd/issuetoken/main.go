// Command issuetoken prints a service token for the host framework.
// Usage: go run ./cmd/issuetoken -sub erp-site -scope hooks,query
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"lbseries/internal/config"
	"lbseries/internal/service"
)

func main() {
	sub := flag.String("sub", "", "token subject (calling site)")
	ttl := flag.Duration("ttl", 0, "token lifetime (default LBS_JWT_EXPIRY)")
	scope := flag.String("scope", strings.Join(service.AllScopes, ","), "comma separated scopes")
	flag.Parse()

	if *sub == "" {
		log.Fatal("-sub is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var scopes []string
	for _, s := range strings.Split(*scope, ",") {
		if s = strings.TrimSpace(s); s != "" {
			scopes = append(scopes, s)
		}
	}

	token, err := service.NewTokenService(cfg.JWT).Issue(*sub, *ttl, scopes...)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	fmt.Println(token)
}
