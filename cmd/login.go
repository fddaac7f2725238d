package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	credentialRepo "stockbook/model/repository/credential"
)

var (
	loginUser string
	loginPass string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify operator credentials",
	Run: func(cmd *cobra.Command, args []string) {
		db, _ := openDB()
		repo := credentialRepo.NewCredentialRepository(db)
		if err := repo.Init(); err != nil {
			fmt.Printf("Credential store init failed: %v\n", err)
			os.Exit(1)
		}
		ok, err := repo.Authenticate(loginUser, loginPass)
		if err != nil {
			fmt.Printf("Login check failed: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			fmt.Println("Invalid username or password")
			os.Exit(1)
		}
		fmt.Printf("Welcome, %s\n", loginUser)
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUser, "username", "u", "", "Operator username (required)")
	loginCmd.MarkFlagRequired("username")
	loginCmd.Flags().StringVarP(&loginPass, "password", "p", "", "Operator password (required)")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}
