package static

import "github.com/custodia-labs/docsearch/internal/core/domain"

// Section labels used by the built-in pages.
const (
	SectionGeneral       = "General"
	SectionGuides        = "Guides"
	SectionConcepts      = "Concepts"
	SectionObservability = "Observability"
	SectionDeployment    = "Deployment"
	SectionReference     = "API Reference"
	SectionBlog          = "Blog"
)

// Pages returns the hand-maintained page list of the documentation site.
func Pages() []domain.Document {
	return []domain.Document{
		{
			Title:    "Home",
			Href:     "/",
			Section:  SectionGeneral,
			Keywords: []string{"overview", "introduction", "framework"},
			Content: "Build production agents in a few lines of Python. The framework takes a model-driven " +
				"approach: the model plans, calls tools, and reflects, while you supply a prompt and a list of tools.",
		},
		{
			Title:    "Getting Started",
			Href:     "/docs/getting-started",
			Section:  SectionGuides,
			Keywords: []string{"install", "setup", "quickstart", "pip"},
			Content: "Install the package with pip, configure credentials for a model provider, and run your " +
				"first agent. This guide walks through creating a virtual environment and invoking an agent from a script.",
		},
		{
			Title:    "Quickstart",
			Href:     "/docs/quickstart",
			Section:  SectionGuides,
			Keywords: []string{"tutorial", "first agent", "hello world"},
			Content: "Create an agent with a system prompt, add a calculator tool, and ask it a question. " +
				"The response streams to the console as the agent reasons and calls tools.",
		},
		{
			Title:    "Agents",
			Href:     "/docs/concepts/agents",
			Section:  SectionConcepts,
			Keywords: []string{"agent", "agent loop", "reasoning"},
			Content: "An agent combines a model, a system prompt and tools. The agent loop sends the conversation " +
				"to the model, executes any requested tool calls, and repeats until the model produces a final answer.",
		},
		{
			Title:    "Tools",
			Href:     "/docs/concepts/tools",
			Section:  SectionConcepts,
			Keywords: []string{"tool", "function calling", "decorator"},
			Content: "Tools give agents the ability to act. Decorate a Python function to expose it as a tool; " +
				"the docstring becomes the description the model sees and the type hints become the input schema.",
		},
		{
			Title:    "Model Context Protocol Tools",
			Href:     "/docs/concepts/tools/mcp",
			Section:  SectionConcepts,
			Keywords: []string{"mcp", "tool server", "integration"},
			Content: "Connect to any MCP server over stdio or streamable HTTP and load its tools into an agent. " +
				"The client manages the session lifetime and exposes remote tools alongside local ones.",
		},
		{
			Title:    "Model Providers",
			Href:     "/docs/concepts/model-providers",
			Section:  SectionConcepts,
			Keywords: []string{"llm", "model", "bedrock", "openai", "anthropic", "ollama"},
			Content: "The framework supports many model providers. Select a provider and model id when " +
				"creating an agent, or implement the model interface to bring your own LLM.",
		},
		{
			Title:    "Prompts",
			Href:     "/docs/concepts/prompts",
			Section:  SectionConcepts,
			Keywords: []string{"prompt", "system prompt", "instructions"},
			Content: "The system prompt sets the behaviour of an agent. Keep instructions short, describe the " +
				"tools the agent should prefer, and state the output format you expect.",
		},
		{
			Title:    "Conversation Memory",
			Href:     "/docs/concepts/memory",
			Section:  SectionConcepts,
			Keywords: []string{"memory", "session", "history", "context window"},
			Content: "Agents keep the conversation history in memory. Conversation managers trim or summarise " +
				"old messages so the context window is not exceeded, and session stores persist state between runs.",
		},
		{
			Title:    "Streaming",
			Href:     "/docs/concepts/streaming",
			Section:  SectionConcepts,
			Keywords: []string{"stream", "async", "events", "callback"},
			Content: "Stream agent events asynchronously to render partial responses. Callback handlers receive " +
				"text deltas, tool use events and lifecycle notifications as they happen.",
		},
		{
			Title:    "Structured Output",
			Href:     "/docs/concepts/structured-output",
			Section:  SectionConcepts,
			Keywords: []string{"pydantic", "schema", "json"},
			Content: "Ask an agent to return a typed object instead of free text. Pass a pydantic model and the " +
				"agent validates the response against its schema before returning it.",
		},
		{
			Title:    "Multi-agent Systems",
			Href:     "/docs/concepts/multi-agent",
			Section:  SectionConcepts,
			Keywords: []string{"swarm", "graph", "agents as tools", "orchestration"},
			Content: "Compose several agents into a swarm, a graph, or a hierarchy where one agent calls others " +
				"as tools. Each pattern trades autonomy against predictability.",
		},
		{
			Title:    "Workflows",
			Href:     "/docs/concepts/workflows",
			Section:  SectionConcepts,
			Keywords: []string{"workflow", "pipeline", "dag", "steps"},
			Content: "Workflows run agents as steps of a directed graph with explicit dependencies. " +
				"Use them when the order of work is known in advance and each step must complete before the next.",
		},
		{
			Title:    "Guardrails",
			Href:     "/docs/concepts/guardrails",
			Section:  SectionConcepts,
			Keywords: []string{"safety", "moderation", "policy"},
			Content: "Guardrails filter model inputs and outputs. Hooks can block unsafe content, redact " +
				"sensitive data, or stop the agent loop when a policy is violated.",
		},
		{
			Title:    "Tracing with xray",
			Href:     "/docs/observability/xray",
			Section:  SectionObservability,
			Keywords: []string{"xray", "tracing", "spans", "opentelemetry"},
			Content: "Every agent invocation emits OpenTelemetry spans for model calls and tool executions. " +
				"Export them to xray or any collector to inspect latency and the path the agent took.",
		},
		{
			Title:    "Logging",
			Href:     "/docs/observability/logging",
			Section:  SectionObservability,
			Keywords: []string{"logs", "logger", "verbose"},
			Content: "The framework logs through the standard logging module. Raise the log level to see " +
				"each request sent to the model and every tool result.",
		},
		{
			Title:    "Metrics",
			Href:     "/docs/observability/metrics",
			Section:  SectionObservability,
			Keywords: []string{"tokens", "latency", "usage", "cost"},
			Content: "Agent results carry metrics for token usage, cycle count and tool latency. " +
				"Aggregate them to track cost and spot slow tools.",
		},
		{
			Title:    "Troubleshooting",
			Href:     "/docs/troubleshooting",
			Section:  SectionGuides,
			Keywords: []string{"debug", "errors", "faq", "inspect"},
			Content: "How to debug an agent that loops, ignores a tool, or fails with a throttling error. " +
				"Enable debug logs, inspect the message history, and check provider quotas.",
		},
		{
			Title:    "Evaluation",
			Href:     "/docs/guides/evaluation",
			Section:  SectionGuides,
			Keywords: []string{"evals", "test", "benchmark"},
			Content: "Evaluate agents against a set of test cases. Score answers with rubrics or a judge model " +
				"and compare runs when you change prompts, tools, or models.",
		},
		{
			Title:    "Deploy to AWS Lambda",
			Href:     "/docs/deployment/lambda",
			Section:  SectionDeployment,
			Keywords: []string{"deploy", "serverless", "lambda", "aws"},
			Content: "Package an agent as a Lambda function. Keep the handler small, initialise the agent outside " +
				"the handler, and raise the timeout for long tool calls.",
		},
		{
			Title:    "Deploy with Docker",
			Href:     "/docs/deployment/docker",
			Section:  SectionDeployment,
			Keywords: []string{"deploy", "container", "docker", "fastapi"},
			Content: "Serve an agent behind a FastAPI endpoint inside a container image. The guide covers " +
				"streaming responses over HTTP and passing credentials through environment variables.",
		},
		{
			Title:    "Deploy to Kubernetes",
			Href:     "/docs/deployment/kubernetes",
			Section:  SectionDeployment,
			Keywords: []string{"deploy", "k8s", "helm", "cluster"},
			Content: "Run the containerised agent on a Kubernetes cluster with a deployment, a service and " +
				"horizontal pod autoscaling.",
		},
		{
			Title:    "Agent API",
			Href:     "/docs/api-reference/agent",
			Section:  SectionReference,
			Keywords: []string{"api", "agent class", "invoke"},
			Content: "Reference for the Agent class: constructor parameters, invoke and stream methods, " +
				"state, and the result object returned by a call.",
		},
		{
			Title:    "Tools API",
			Href:     "/docs/api-reference/tools",
			Section:  SectionReference,
			Keywords: []string{"api", "tool decorator", "tool spec"},
			Content: "Reference for the tool decorator, tool specifications, and the tool result format " +
				"returned to the model.",
		},
		{
			Title:    "Telemetry API",
			Href:     "/docs/api-reference/telemetry",
			Section:  SectionReference,
			Keywords: []string{"api", "tracer", "telemetry"},
			Content: "Reference for the tracer configuration, span attributes, and exporters used for " +
				"observability.",
		},
		{
			Title:    "Introducing the agent framework",
			Href:     "/blog/introducing",
			Section:  SectionBlog,
			Keywords: []string{"announcement", "release"},
			Content: "Why we open sourced a model-driven agent framework, and what teams built with it " +
				"before release.",
		},
		{
			Title:    "Debugging agents in production",
			Href:     "/blog/debugging-agents",
			Section:  SectionBlog,
			Keywords: []string{"debug", "production", "tracing"},
			Content: "Lessons from operating agents at scale: trace every tool call, keep prompts versioned, " +
				"and alert on loops that exceed the cycle budget.",
		},
	}
}
