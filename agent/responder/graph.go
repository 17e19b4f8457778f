package responder

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	einoprompt "github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/tanpawarit/guitar-shop-agents/agent/contract"
)

// compileResponderGraph builds the prompt -> model pipeline every responder
// runs its operations through. The user message is a single {input} slot; the
// operation-specific prose is assembled by the caller.
func compileResponderGraph(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	graphName string,
) (compose.Runnable[map[string]any, *schema.Message], error) {
	template := einoprompt.FromMessages(
		schema.FString,
		schema.SystemMessage(systemPrompt),
		schema.UserMessage("{input}"),
	)

	graph := compose.NewGraph[map[string]any, *schema.Message]()
	if err := graph.AddChatTemplateNode("prompt", template); err != nil {
		return nil, fmt.Errorf("add responder prompt node: %w", err)
	}
	if err := graph.AddChatModelNode("model", chatModel); err != nil {
		return nil, fmt.Errorf("add responder model node: %w", err)
	}
	if err := graph.AddEdge(compose.START, "prompt"); err != nil {
		return nil, fmt.Errorf("add responder edge start->prompt: %w", err)
	}
	if err := graph.AddEdge("prompt", "model"); err != nil {
		return nil, fmt.Errorf("add responder edge prompt->model: %w", err)
	}
	if err := graph.AddEdge("model", compose.END); err != nil {
		return nil, fmt.Errorf("add responder edge model->end: %w", err)
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName(graphName))
	if err != nil {
		return nil, fmt.Errorf("compile responder graph %s: %w", graphName, err)
	}
	return runner, nil
}

// generate invokes the compiled pipeline with an assembled user prompt and
// returns the trimmed prose. Backend failures propagate uncaught beyond
// wrapping; there is no per-responder retry.
func generate(
	ctx context.Context,
	runner compose.Runnable[map[string]any, *schema.Message],
	input string,
) (string, error) {
	msg, err := runner.Invoke(ctx, map[string]any{
		"input": input,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: empty model response", contractx.ErrModelInvoke)
	}
	return strings.TrimSpace(msg.Content), nil
}
