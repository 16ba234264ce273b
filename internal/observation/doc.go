// Package observation implements the analysis core for behavioral
// observation sheets: timestamp normalization, focal-follow segment
// extraction, and the consistency checks run over merged row sets.
//
// Everything in this package is a pure function of its inputs. No
// function panics on malformed data; unparseable values degrade to
// literal strings or are excluded from analysis, and every validation
// problem is reported as data rather than as an error.
package observation
