package main

import (
	"fmt"
	"os"
	"sort"

	"samvidha-backend/lib/telemetry"
	samvidha "samvidha-backend/services/samvidha"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	username string
	password string
	baseUrl  string
)

func init() {
	rootCmd.Flags().StringVarP(&username, "username", "u", "", "portal username")
	rootCmd.Flags().StringVarP(&password, "password", "p", "", "portal password")
	rootCmd.Flags().StringVar(&baseUrl, "base-url", "https://samvidha.iare.ac.in", "portal base url")
	rootCmd.MarkFlagRequired("username")
	rootCmd.MarkFlagRequired("password")
}

var rootCmd = &cobra.Command{
	Use:   "samvidha-cli",
	Short: "Fetch your attendance from the samvidha portal and print a summary.",
	Run: func(cmd *cobra.Command, args []string) {
		service := samvidha.NewService(samvidha.ServiceOptions{
			BaseUrl: baseUrl,
		})

		result := service.GetAttendance(cmd.Context(), username, password)
		if !result.Overall.Success {
			fmt.Fprintln(os.Stderr, result.Overall.Message)
			os.Exit(1)
		}

		codes := make([]string, 0, len(result.Subjects))
		for code := range result.Subjects {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", "Code", "Subject", "Present", "Absent", "%", "Status"})
		for i, code := range codes {
			sub := result.Subjects[code]
			t.AppendRow(table.Row{
				i + 1, code, sub.Name,
				sub.Present, sub.Absent,
				fmt.Sprintf("%.2f", sub.Percentage), sub.Status,
			})
		}
		t.Render()

		fmt.Printf(
			"Overall: %.2f%% (%d present, %d absent)\n",
			result.Overall.Percentage,
			result.Overall.Present,
			result.Overall.Absent,
		)
	},
}

func main() {
	telemetry.InitSlog(false)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
