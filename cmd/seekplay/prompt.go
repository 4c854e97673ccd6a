/*
 * Copyright (c) 2025 Hardiyanto Y -Ebiet.
 * This software is part of the HDX (Hardix Audio) project.
 * This code is provided "as is", without warranty of any kind.
 */

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// askAudioPath asks for the file to play when none was given.
func askAudioPath(def string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: ">> "})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	fmt.Println("No audio file given.")
	return ask(rl, "Audio file", def)
}

func ask(rl *readline.Instance, prompt, def string) (string, error) {
	rl.SetPrompt(fmt.Sprintf("%s [%s]: ", prompt, def))
	line, err := rl.Readline()
	if err == io.EOF {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return pick(line, def), nil
}

func pick(line, def string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
