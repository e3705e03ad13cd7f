package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/Mxolisi-Shongwe/my-policy-pal/app/config"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/database"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/models"
	"github.com/Mxolisi-Shongwe/my-policy-pal/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new user")
	password := flag.String("password", "", "password for the new user")
	firstName := flag.String("first-name", "", "first name")
	lastName := flag.String("last-name", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("usage: add_user -email ... -password ... [-first-name ...] [-last-name ...]")
	}

	// Initialize database connection
	config.Init()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user := &models.User{
		Email:     *email,
		Password:  hashed,
		FirstName: *firstName,
		LastName:  *lastName,
	}

	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Error creating user:", err)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
