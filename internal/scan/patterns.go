package scan

import "regexp"

// secretPatterns are credential-shaped strings that always block
// installation when found in any readable file.
var secretPatterns = []*regexp.Regexp{
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),                             // AWS access key
	regexp.MustCompile(`ASIA[0-9A-Z]{16}`),                             // AWS temporary access key
	regexp.MustCompile(`ghp_[A-Za-z0-9]{36,}`),                         // GitHub personal access token
	regexp.MustCompile(`xox[baprs]-[A-Za-z0-9-]{10,}`),                 // Slack token
	regexp.MustCompile(`-----BEGIN (RSA|OPENSSH|EC|PGP) PRIVATE KEY-----`), // PEM private key
}

// dangerousCommands are high-risk command shapes flagged in script files.
// Findings are warnings: risky, but not proof of malice.
var dangerousCommands = []*regexp.Regexp{
	regexp.MustCompile(`rm\s+-rf\s+/`),
	regexp.MustCompile(`curl\s+[^\n]+\|\s*sh`),
	regexp.MustCompile(`wget\s+[^\n]+\|\s*sh`),
	regexp.MustCompile(`chmod\s+777`),
	regexp.MustCompile(`sudo\s+`),
}

// executableExtensions mark files flagged as executable or binary
// regardless of content.
var executableExtensions = map[string]bool{
	"exe":   true,
	"dll":   true,
	"dylib": true,
	"so":    true,
	"bat":   true,
	"cmd":   true,
	"ps1":   true,
}

// scriptExtensions mark files checked for dangerous command shapes.
var scriptExtensions = map[string]bool{
	"sh":   true,
	"bash": true,
	"zsh":  true,
	"ps1":  true,
	"bat":  true,
	"cmd":  true,
	"py":   true,
	"js":   true,
	"ts":   true,
}
