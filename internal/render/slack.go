package render

import (
	"encoding/json"
	"fmt"

	"github.com/slack-go/slack"
)

// slackBlocks renders entries as Block Kit blocks: an image block per
// resolved emoji and a plain text section for anything unresolved.
func slackBlocks(entries []Entry) ([]byte, error) {
	blocks := make([]slack.Block, 0, len(entries))
	for _, e := range entries {
		if !e.OK {
			text := slack.NewTextBlockObject(slack.PlainTextType, e.Input, true, false)
			blocks = append(blocks, slack.NewSectionBlock(text, nil, nil))
			continue
		}

		name := e.Result.Emoji.Name
		title := slack.NewTextBlockObject(slack.PlainTextType, name, true, false)
		blocks = append(blocks, slack.NewImageBlock(linkURL(e.Result.URL), name, "", title))
	}

	data, err := json.MarshalIndent(slack.Blocks{BlockSet: blocks}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding slack blocks: %w", err)
	}
	return data, nil
}
