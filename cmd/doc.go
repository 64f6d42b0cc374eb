// Copyright © 2026 The golox authors

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/loxlang/golox/docs"
)

var docListTopics bool

// docCmd represents the doc command
var docCmd = &cobra.Command{
	Use:   "doc [flags] TOPIC",
	Short: "Show documentation for the lox language",
	Long: `Show sections of the built-in lox language reference.

Examples:
  golox doc values            Types and truthiness
  golox doc operators         Operator table and precedence
  golox doc closures          How functions capture variables

Use -l to list all available topics:
  golox doc -l`,
	Run: func(cmd *cobra.Command, args []string) {
		out := bufio.NewWriter(os.Stdout)
		defer out.Flush() //nolint:errcheck // best-effort flush on exit
		if docListTopics {
			if err := renderTopicList(out); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
		if len(args) != 1 {
			_ = cmd.Help()
			os.Exit(1)
		}
		if err := renderTopic(out, args[0]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

type guideTopic struct {
	name string
	body string
}

// guideTopics splits the embedded language guide on its second-level
// headings. Text before the first heading is dropped.
func guideTopics() []guideTopic {
	var topics []guideTopic
	sections := strings.Split(docs.LangGuide, "\n## ")
	for _, section := range sections[1:] {
		name, body, _ := strings.Cut(section, "\n")
		topics = append(topics, guideTopic{
			name: strings.TrimSpace(name),
			body: strings.TrimSpace(body),
		})
	}
	return topics
}

func renderTopicList(w io.Writer) error {
	for _, topic := range guideTopics() {
		if _, err := fmt.Fprintln(w, topic.name); err != nil {
			return err
		}
	}
	return nil
}

func renderTopic(w io.Writer, name string) error {
	for _, topic := range guideTopics() {
		if topic.name != name {
			continue
		}
		body := indent.String(wordwrap.String(topic.body, 72), 2)
		_, err := fmt.Fprintf(w, "%s\n\n%s\n", topic.name, body)
		return err
	}
	return fmt.Errorf("no documentation topic %q, try golox doc -l", name)
}

func init() {
	rootCmd.AddCommand(docCmd)

	docCmd.Flags().BoolVarP(&docListTopics, "list-topics", "l", false,
		"List all documentation topics.")
}
