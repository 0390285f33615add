// Command tokengen prints a signed access token for calling the payments
// API in development.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"payproc/internal/config"
	"payproc/internal/models"
	"payproc/internal/utils"
)

func main() {
	config.LoadEnv()

	userID := flag.String("user", "", "user id placed in the token")
	role := flag.String("role", "user", "role: user or admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	token, err := utils.GenerateToken(config.GetEnv("JWT_SECRET", ""), &models.UserClaims{
		UserID:      *userID,
		Role:        *role,
		Permissions: models.GetDefaultPermissions(*role),
	}, *ttl)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
