package semantic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sync"

	"github.com/mattn/go-shellwords"
)

type execResolver struct {
	cmd []string
	mu  sync.Mutex
}

type execPayload struct {
	Text       string   `json:"text"`
	Vocabulary []string `json:"vocabulary"`
}

type execReply struct {
	Candidates []Candidate `json:"candidates"`
}

// NewExecResolver runs an external command per request, passing the text and
// vocabulary as JSON on stdin and reading candidates as JSON from stdout.
func NewExecResolver(command string) (Resolver, error) {
	parser := shellwords.NewParser()
	args, err := parser.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse semantic command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("semantic command is empty")
	}
	return &execResolver{cmd: args}, nil
}

func (r *execResolver) Resolve(ctx context.Context, text string, vocabulary []string) ([]Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	input, err := json.Marshal(execPayload{Text: text, Vocabulary: vocabulary})
	if err != nil {
		return nil, err
	}

	base := r.cmd[0]
	args := append([]string{}, r.cmd[1:]...)
	cmd := exec.CommandContext(ctx, base, args...)
	cmd.Stdin = bytes.NewReader(input)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("semantic exec command failed: %w", err)
	}

	var reply execReply
	if err := json.Unmarshal(output, &reply); err != nil {
		return nil, fmt.Errorf("decode semantic exec response: %w", err)
	}
	return reply.Candidates, nil
}
