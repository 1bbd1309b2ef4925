// internal/agent/trace.go
package agent

import "strings"

const apologyOutput = "I apologize for the inconvenience. I'm experiencing technical difficulties. Please try asking again about stocks, crypto, exchange rates, or investment calculations."

// Trace is the five-section record of a single query's handling. Only
// OUTPUT is meant for end-user display; the other sections document the
// intermediate steps for transparency.
type Trace struct {
	Start       string
	Plan        string
	Action      string
	Observation string
	Output      string
}

// Format renders the trace. START and OUTPUT are always present; the
// middle sections are included only when non-empty. An empty OUTPUT is
// replaced with the apology text so the result is never blank.
func (t Trace) Format() string {
	var b strings.Builder

	b.WriteString("START: ")
	b.WriteString(t.Start)

	if t.Plan != "" {
		b.WriteString("\n\nPLAN: ")
		b.WriteString(t.Plan)
	}
	if t.Action != "" {
		b.WriteString("\n\nACTION: ")
		b.WriteString(t.Action)
	}
	if t.Observation != "" {
		b.WriteString("\n\nOBSERVATION: ")
		b.WriteString(t.Observation)
	}

	output := t.Output
	if strings.TrimSpace(output) == "" {
		output = apologyOutput
	}
	b.WriteString("\n\nOUTPUT: ")
	b.WriteString(output)

	return b.String()
}

// cryptoBlurbs holds the fixed educational sentences appended to the
// crypto price output for the three best-known coins.
var cryptoBlurbs = map[string]string{
	"BTC": "Bitcoin (BTC) is the first and most well-known cryptocurrency, created in 2009 by an anonymous person or group using the pseudonym Satoshi Nakamoto. It operates on a decentralized blockchain network without a central authority.",
	"ETH": "Ethereum (ETH) is a decentralized platform that enables smart contracts and decentralized applications (dApps) to be built and run without downtime, fraud, control, or interference from a third party.",
	"SOL": "Solana (SOL) is a high-performance blockchain supporting builders around the world creating crypto apps that scale. It aims to provide fast transaction speeds and low fees.",
}

func capabilityTrace(input string) string {
	return Trace{
		Start:       input,
		Plan:        "I'll provide a response based on my knowledge.",
		Observation: "I'm having trouble accessing my AI capabilities.",
		Output:      "I can help you with stock prices, cryptocurrency rates, exchange rates, investment calculations, and financial news. Could you try asking a specific finance-related question?",
	}.Format()
}

func apologyTrace(input string) string {
	return Trace{
		Start:       input,
		Plan:        "I'll provide a general response.",
		Observation: "There was an error processing your request.",
		Output:      apologyOutput,
	}.Format()
}
