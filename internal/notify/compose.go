// Package notify builds and delivers the end-of-batch Slack notification.
package notify

import (
	"fmt"

	"conveyor/internal/gitrepo"
	"conveyor/internal/report"
)

// Attachment colors used by the notification.
const (
	colorSuccess = "#4bb543"
	colorWarning = "#f2c744"
)

// Message is a Slack Block Kit payload.
type Message struct {
	Blocks      []Block      `json:"blocks"`
	Attachments []Attachment `json:"attachments"`
}

// Attachment groups blocks under a colored gutter.
type Attachment struct {
	Color  string  `json:"color,omitempty"`
	Blocks []Block `json:"blocks"`
}

// Block is a single layout block. Dividers carry no text.
type Block struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
}

// Text is a block text object.
type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func section(textType, text string) Block {
	return Block{Type: "section", Text: &Text{Type: textType, Text: text}}
}

func divider() Block {
	return Block{Type: "divider"}
}

// Compose folds the batch's three outcome lists into one notification.
// Section order is fixed: summary, imported (or the empty-import notice),
// failures when present, git errors when present. Compose has no side
// effects and touches no network.
func Compose(imported []report.ImportedItem, failed []report.FailureRecord, gitErrors []gitrepo.PushOutcome) Message {
	summary := Attachment{
		Color: colorSuccess,
		Blocks: []Block{
			section("mrkdwn", ":package: *AutoPkg has finished running*"),
		},
	}

	if len(imported) == 0 {
		summary.Blocks = append(summary.Blocks,
			section("mrkdwn", "There are no new items to be imported into Munki"))
	} else {
		summary.Blocks = append(summary.Blocks, importedBlocks(imported)...)
	}

	message := Message{
		Blocks:      []Block{},
		Attachments: []Attachment{summary},
	}

	if len(failed) > 0 {
		message.Attachments = append(message.Attachments, failuresAttachment(failed))
	}
	if len(gitErrors) > 0 {
		message.Attachments = append(message.Attachments, gitErrorsAttachment(gitErrors))
	}

	return message
}

func importedBlocks(imported []report.ImportedItem) []Block {
	blocks := []Block{
		section("plain_text", "The following items will be imported into munki after approval"),
	}
	for _, item := range imported {
		blocks = append(blocks,
			section("mrkdwn", fmt.Sprintf("• %s version %s", item.BranchName, item.Version)))
	}
	return blocks
}

func failuresAttachment(failed []report.FailureRecord) Attachment {
	blocks := []Block{
		divider(),
		section("mrkdwn", ":warning: *The following recipes failed*"),
	}
	for _, item := range failed {
		blocks = append(blocks,
			section("mrkdwn", item.Recipe),
			section("mrkdwn", fmt.Sprintf("```%s```", item.Message)))
	}
	return Attachment{Color: colorWarning, Blocks: blocks}
}

func gitErrorsAttachment(gitErrors []gitrepo.PushOutcome) Attachment {
	blocks := []Block{
		divider(),
		section("mrkdwn", ":github: *Git errors*"),
	}
	for _, item := range gitErrors {
		blocks = append(blocks,
			section("mrkdwn", fmt.Sprintf("error pushing branch: %s ```%s```", item.Branch, item.Error)))
	}
	return Attachment{Color: colorWarning, Blocks: blocks}
}
