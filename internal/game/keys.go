package game

// RuneAction maps a printable key to an action. Both front-ends use it so the
// controls read the same over SSH and in a local terminal.
func RuneAction(r rune) Action {
	switch r {
	case '1':
		return ActionRock
	case '2':
		return ActionPaper
	case '3':
		return ActionScissors
	case '4':
		return ActionBuy1
	case '5':
		return ActionBuy2
	case '6':
		return ActionBuy3
	case 'd', 'D', 'l', 'L', '\t':
		return ActionTargetNext
	case 'a', 'A', 'h', 'H':
		return ActionTargetPrev
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q', 3: // Ctrl-C
		return ActionQuit
	}
	return ActionNone
}
