package commands

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for kanban.

To load completions:

Bash:
  $ source <(kanban completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ kanban completion bash > /etc/bash_completion.d/kanban
  # macOS:
  $ kanban completion bash > $(brew --prefix)/etc/bash_completion.d/kanban

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ kanban completion zsh > "${fpath[1]}/_kanban"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ kanban completion fish | source

  # To load completions for each session, execute once:
  $ kanban completion fish > ~/.config/fish/completions/kanban.fish

PowerShell:
  PS> kanban completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> kanban completion powershell > kanban.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Annotations:           map[string]string{skipContainer: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(out)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
