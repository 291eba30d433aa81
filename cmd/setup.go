package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const envFile = ".env"

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup wizard for Storyboard",
	Long:  `Configure the Gemini API key, optional Cloud Storage bucket and the output directory.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("🎬 Storyboard Setup"))

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Creating directories", createDirectories},
		{"Configuring environment", configureEnv},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return nil
}

func createDirectories() error {
	if err := os.MkdirAll("output", 0755); err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	fmt.Println(successStyle.Render("✓ Created directories"))
	return nil
}

func configureEnv() error {
	if _, err := os.Stat(envFile); err == nil {
		var overwrite bool
		if err := huh.NewConfirm().
			Title("Found existing .env file").
			Description("Overwrite?").
			Value(&overwrite).
			Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(infoStyle.Render("Kept existing .env"))
			return nil
		}
	}

	env := make(map[string]string)

	if err := configureAPIKey(env); err != nil {
		return err
	}

	if err := configureGCS(env); err != nil {
		return err
	}

	return writeEnvFile(env)
}

func configureAPIKey(env map[string]string) error {
	var useSecret bool
	if err := huh.NewConfirm().
		Title("Read the Gemini API key from Secret Manager?").
		Description("Otherwise the key is stored in .env").
		Value(&useSecret).
		Run(); err != nil {
		return err
	}

	if !useSecret {
		var apiKey string
		if err := huh.NewInput().
			Title("Gemini API Key").
			Description("https://aistudio.google.com/apikey").
			EchoMode(huh.EchoModePassword).
			Value(&apiKey).
			Validate(required("Gemini API Key")).
			Run(); err != nil {
			return err
		}
		env["API_KEY"] = strings.TrimSpace(apiKey)
		return nil
	}

	var project, secret string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Google Cloud project ID").
				Value(&project).
				Validate(required("Project ID")),
			huh.NewInput().
				Title("Secret name").
				Placeholder("gemini-api-key").
				Value(&secret).
				Validate(required("Secret name")),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	env["GOOGLE_CLOUD_PROJECT"] = strings.TrimSpace(project)
	env["API_KEY_SECRET"] = strings.TrimSpace(secret)
	return nil
}

func configureGCS(env map[string]string) error {
	var setup bool
	if err := huh.NewConfirm().
		Title("Store frames in Cloud Storage?").
		Description("Frames are written to ./output otherwise").
		Value(&setup).
		Run(); err != nil || !setup {
		return err
	}

	var bucket string
	if err := huh.NewInput().
		Title("GCS bucket").
		Value(&bucket).
		Validate(required("Bucket")).
		Run(); err != nil {
		return err
	}

	env["GCS_BUCKET"] = strings.TrimSpace(bucket)
	fmt.Println(infoStyle.Render("Set gcs.enabled: true in config.yaml to upload frames"))
	return nil
}

func writeEnvFile(env map[string]string) error {
	if err := godotenv.Write(env, envFile); err != nil {
		return fmt.Errorf("write %s: %w", envFile, err)
	}

	fmt.Println(successStyle.Render("✓ Created .env file"))
	printNextSteps()
	return nil
}

func printNextSteps() {
	fmt.Println()
	fmt.Println(titleStyle.Render("Next steps:"))
	fmt.Println("  1. Run: storyboard extract -i reference.png")
	fmt.Println("  2. Run: storyboard outline -c \"<features>\" -n 6")
	fmt.Println("  3. Run: storyboard image -p \"<shot action>\" -r 16:9")
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
