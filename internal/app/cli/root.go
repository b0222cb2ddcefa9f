package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return "(not logged in)"
	}
	return fmt.Sprintf("(%s)", a.user.Name)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "College records CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
