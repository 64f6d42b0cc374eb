// Copyright © 2026 The golox authors

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loxlang/golox/lox"
	"github.com/loxlang/golox/lox/x/profiler"
	"github.com/loxlang/golox/parser"
	"github.com/loxlang/golox/parser/ast"
	"github.com/loxlang/golox/parser/parsecparser"
)

var (
	runExpression bool
	runPrint      bool
	runProfile    string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file ...]",
	Short: "Run lox code",
	Long:  `Run lox code supplied via the command line or one or more script files.`,
	Run: func(cmd *cobra.Command, args []string) {
		binds := lox.NewBindings()
		res := lox.NewResolver(binds)
		interp := lox.New(binds)
		if runProfile != "" {
			prof := profiler.NewCallgrindProfiler(interp.Runtime())
			if err := prof.SetFile(runProfile); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if err := prof.Enable(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			defer func() {
				if err := prof.Complete(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}()
		}
		if runExpression {
			runExpressions(interp, res, args)
			return
		}
		for _, path := range args {
			runFile(interp, res, path)
		}
	},
}

// runFile executes one script, rendering any errors against its source.
func runFile(interp *lox.Interp, res *lox.Resolver, path string) {
	src, err := os.ReadFile(path) //#nosec G304
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	stmts, parseErrs := parser.Parse(string(src))
	if len(parseErrs) > 0 {
		renderErrors(path, parseErrs...)
		os.Exit(1)
	}
	if err := res.Resolve(stmts); err != nil {
		renderErrors(path, err.Error())
		os.Exit(1)
	}
	if _, err := interp.Execute(stmts); err != nil {
		renderErrors(path, err.Error())
		os.Exit(1)
	}
}

// runExpressions evaluates each argument as a single expression.
func runExpressions(interp *lox.Interp, res *lox.Resolver, args []string) {
	for _, arg := range args {
		expr, _, err := parsecparser.ParseExpr([]byte(arg))
		if err != nil {
			renderErrors("<expr>", err.Error())
			os.Exit(1)
		}
		stmts := []ast.Stmt{&ast.ExprStmt{Expr: expr}}
		if err := res.Resolve(stmts); err != nil {
			renderErrors("<expr>", err.Error())
			os.Exit(1)
		}
		val, err := interp.Execute(stmts)
		if err != nil {
			renderErrors("<expr>", err.Error())
			os.Exit(1)
		}
		if runPrint {
			fmt.Println(val)
		}
	}
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lox expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().StringVar(&runProfile, "profile", "",
		"Write a callgrind profile of the run to the given file")
}
