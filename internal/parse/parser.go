// Package parse implements the recursive-descent parser (component F) that
// turns a token stream into the ast package's node types.
//
// Grounded on internal/llmsh/parser/parser.go from the teacher. Generalized
// in two ways: (1) llmsh folds sequences and conditionals into a binary tree
// of SequenceNode/ConditionalNode; this parser instead builds the flat
// ast.ChainedCommand the spec calls for, left-folding each new command onto
// a running Commands/Operators pair. (2) llmsh attaches redirections to the
// whole pipeline (ComplexCommandNode); the spec attaches at most one output
// and one input redirection to the ParsedCommand they immediately follow
// (spec 4.F), so redirection parsing happens inside parseCommand here.
package parse

import (
	"fmt"

	"github.com/mako10k/ishell/internal/ast"
	"github.com/mako10k/ishell/internal/token"
)

// Parser consumes a token.Tokenizer and produces an ast.Node.
type Parser struct {
	tok     *token.Tokenizer
	current token.Token
}

// NewParser creates a parser over input.
func NewParser(input string) (*Parser, error) {
	p := &Parser{tok: token.NewTokenizer(input)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse parses input and returns nil if it contains no commands.
func Parse(input string) (ast.Node, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.parseChain()
}

func (p *Parser) advance() error {
	tk, err := p.tok.NextToken()
	if err != nil {
		return err
	}
	p.current = tk
	return nil
}

// parseChain parses a run of pipelines joined by ";", "&&", "||" into a flat
// ast.ChainedCommand (or a bare node when there is only one).
func (p *Parser) parseChain() (ast.Node, error) {
	first, err := p.parsePipeline()
	if err != nil {
		return nil, err
	}
	if first == nil {
		return nil, nil
	}

	chain := &ast.ChainedCommand{Commands: []ast.Node{first}}

	for p.isChainOperator() {
		op := ast.ChainOperator(p.current.Value)
		if err := p.advance(); err != nil {
			return nil, err
		}

		next, err := p.parsePipeline()
		if err != nil {
			return nil, err
		}
		if next == nil {
			// Trailing operator with nothing after it; stop rather than error,
			// mirroring llmsh's tolerance of an empty trailing statement.
			break
		}

		chain.Commands = append(chain.Commands, next)
		chain.Operators = append(chain.Operators, op)
	}

	if len(chain.Commands) == 1 {
		return chain.Commands[0], nil
	}
	return chain, nil
}

func (p *Parser) isChainOperator() bool {
	switch p.current.Type {
	case token.SEMICOLON, token.AND, token.OR:
		return true
	default:
		return false
	}
}

// parsePipeline parses one or more commands joined by "|".
func (p *Parser) parsePipeline() (ast.Node, error) {
	cmd, err := p.parseCommand()
	if err != nil {
		return nil, err
	}
	if cmd == nil {
		return nil, nil
	}

	commands := []*ast.ParsedCommand{cmd}

	for p.current.Type == token.PIPE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		next, err := p.parseCommand()
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, fmt.Errorf("expected command after pipe at position %d", p.current.Position)
		}
		commands = append(commands, next)
	}

	if len(commands) == 1 {
		return commands[0], nil
	}
	return &ast.PipedCommand{Commands: commands}, nil
}

// parseCommand parses a command name, its arguments, and any redirections
// interleaved with them (spec 4.F allows `cmd arg1 > out arg2`).
func (p *Parser) parseCommand() (*ast.ParsedCommand, error) {
	if p.current.Type != token.WORD && p.current.Type != token.QUOTED_STRING {
		return nil, nil
	}

	cmd := &ast.ParsedCommand{Command: p.current.Value}
	if err := p.advance(); err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case token.WORD, token.QUOTED_STRING:
			cmd.Args = append(cmd.Args, p.current.Value)
			cmd.ArgQuotes = append(cmd.ArgQuotes, p.current.Quote)
			if err := p.advance(); err != nil {
				return nil, err
			}
		case token.REDIRECT_OUT, token.REDIRECT_APPEND:
			if cmd.RedirectOutput != nil {
				return nil, fmt.Errorf("multiple output redirections at position %d", p.current.Position)
			}
			mode := ast.RedirectOverwrite
			if p.current.Type == token.REDIRECT_APPEND {
				mode = ast.RedirectAppend
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			filename, err := p.expectWord("filename after redirection")
			if err != nil {
				return nil, err
			}
			cmd.RedirectOutput = &ast.OutputRedirect{Mode: mode, Filename: filename}
		case token.REDIRECT_IN:
			if cmd.RedirectInput != nil {
				return nil, fmt.Errorf("multiple input redirections at position %d", p.current.Position)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			filename, err := p.expectWord("filename after redirection")
			if err != nil {
				return nil, err
			}
			cmd.RedirectInput = &ast.InputRedirect{Kind: ast.InputFromFile, Source: filename}
		case token.REDIRECT_HEREDOC:
			if cmd.RedirectInput != nil {
				return nil, fmt.Errorf("multiple input redirections at position %d", p.current.Position)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			delim, err := p.expectWord("heredoc delimiter")
			if err != nil {
				return nil, err
			}
			// No multi-line heredoc body is read: Source carries the word
			// after "<<" as written, and the executor feeds that word itself
			// to the command as its stdin text.
			cmd.RedirectInput = &ast.InputRedirect{Kind: ast.InputFromHeredoc, Source: delim}
		default:
			return cmd, nil
		}
	}
}

func (p *Parser) expectWord(what string) (string, error) {
	if p.current.Type != token.WORD && p.current.Type != token.QUOTED_STRING {
		return "", fmt.Errorf("expected %s at position %d", what, p.current.Position)
	}
	v := p.current.Value
	if err := p.advance(); err != nil {
		return "", err
	}
	return v, nil
}
