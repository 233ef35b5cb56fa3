package tree

import (
	"fmt"
	"strings"
)

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

// Format returns a string representation of the tree rooted at root.
// A complete binary tree with height 2 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
// Each line is produced by label, or fmt.Sprint of the key if label is nil.
// An empty tree is the empty string.
func Format[T any, X any](root *Node[T, X], label func(*Node[T, X]) string) string {
	if root == nil {
		return ""
	}

	if label == nil {
		label = func(n *Node[T, X]) string {
			return fmt.Sprint(n.Key)
		}
	}

	var sb strings.Builder
	printvisit(&sb, root, label, "", "", true, false)

	return sb.String()
}

func printvisit[T any, X any](
	sb *strings.Builder, n *Node[T, X], label func(*Node[T, X]) string,
	prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(label(n))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, label, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, label, prefix, treeRightBranch, false, false)
	}
}
