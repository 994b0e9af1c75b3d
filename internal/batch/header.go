package batch

import "fmt"

// Scheduler holds the SLURM directives rendered into every script
// preamble. Zero fields take the defaults below.
type Scheduler struct {
	Tasks     int    `yaml:"tasks"`
	Nodes     int    `yaml:"nodes"`
	Time      string `yaml:"time"`
	Partition string `yaml:"partition"`
	MemPerCPU int    `yaml:"mem_per_cpu"`
	MailUser  string `yaml:"mail_user"` // omitted when empty
}

// DefaultScheduler matches the Harvard RC Odyssey setup the pipeline
// was written for.
func DefaultScheduler() Scheduler {
	return Scheduler{
		Tasks:     32,
		Nodes:     1,
		Time:      "6-00:00",
		Partition: "general",
		MemPerCPU: 1000,
	}
}

// HeaderLines renders the fixed scheduler preamble shared by every
// generated script.
func (s Scheduler) HeaderLines() []string {
	d := DefaultScheduler()
	if s.Tasks == 0 {
		s.Tasks = d.Tasks
	}
	if s.Nodes == 0 {
		s.Nodes = d.Nodes
	}
	if s.Time == "" {
		s.Time = d.Time
	}
	if s.Partition == "" {
		s.Partition = d.Partition
	}
	if s.MemPerCPU == 0 {
		s.MemPerCPU = d.MemPerCPU
	}

	lines := []string{
		"#!/bin/bash",
		fmt.Sprintf("#SBATCH -n %d", s.Tasks),
		fmt.Sprintf("#SBATCH -N %d", s.Nodes),
		"#SBATCH --contiguous",
		fmt.Sprintf("#SBATCH -t %s", s.Time),
		fmt.Sprintf("#SBATCH -p %s", s.Partition),
		fmt.Sprintf("#SBATCH --mem-per-cpu=%d", s.MemPerCPU),
		"#SBATCH --mail-type=ALL",
	}
	if s.MailUser != "" {
		lines = append(lines, fmt.Sprintf("#SBATCH --mail-user=%s", s.MailUser))
	}
	return lines
}
