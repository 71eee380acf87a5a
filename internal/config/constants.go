// Path: internal/config/constants.go
package config

import "time"

const (
	// Server configuration defaults
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 90 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

const (
	DefaultAPIHost        = "127.0.0.1"
	DefaultPort           = 8501
	DefaultLLMBaseURL     = "https://api.groq.com/openai/v1"
	DefaultLLMModel       = "llama-3.3-70b-versatile"
	DefaultLLMTemperature = 0.7
	DefaultLLMMaxTokens   = 2000
	DefaultLLMTimeout     = 60 * time.Second
)

// IdeaLabel prefixes the idea text in the user message.
const IdeaLabel = "Idea to validate: "

// SystemPrompt is the fixed advisor instruction sent with every validation.
const SystemPrompt = `You are an experienced startup advisor and business analyst.
Your role is to provide honest, constructive feedback on business ideas.

Analyze the idea thoroughly and provide:
1. **Strengths & Opportunities**: What's good about this idea? What potential does it have?
2. **Challenges & Risks**: What obstacles might they face? What could go wrong?
3. **Improvements**: Specific, actionable suggestions to make the idea better
4. **Market Viability**: Assessment of market demand and competition
5. **Overall Rating**: Give a rating out of 10 with justification

Be honest but encouraging. Focus on being helpful and actionable.`
