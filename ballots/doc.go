// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballots turns input files into voting profiles.

# Ranked-ballot text (.abif)

	# 5 candidates
	=0 : [0]
	=1 : [1]
	3:4>2>3>1>0
	1 : 3>1=4

  - Blank lines are skipped.
  - The first "#" line whose first token is an integer declares m. Other "#"
    lines are comments. Input without such a line fails with ErrMissingHeader.
  - Lines starting with "=" map candidate labels and are skipped.
  - Ballot lines are "<count> : <ranking>". The ranking is added count times.
  - "=" inside a ranking is a tie. It is read as ">" so the tie breaks in the
    order written: "2=0" becomes 2 > 0.
  - A ranking that lists fewer than m candidates is completed by appending the
    missing candidates in ascending order: with m=4, "2" becomes 2 > 0 > 1 > 3.
  - Candidates are the labels "0".."m-1". Every completed ballot must be a
    permutation of them (ErrBallotAlternativeMismatch).

Errors tied to a line are returned as *LineError.

# Structured input (.json, .yaml)

	{
	  "scheme": "borda",
	  "voting_situation": [["A", "B", "C"], ["B", "C", "A"], ["C", "A", "B"]],
	  "strategies": {"bullet": true}
	}

The scheme is optional here; a scheme passed by the caller takes precedence
(see Parsed.ResolveScheme). The strategies block is kept but never read.
*/
package ballots
