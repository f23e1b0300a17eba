/*
Package main implements ktsconv, a converter from TeamCity Kotlin-DSL build
settings to a structured YAML or JSON document.

ktsconv reads a settings.kts file, recognizes a fixed catalog of block shapes
(projects, build types, templates, VCS roots, steps, triggers, features,
parameters) and assembles them into a single document tree. It is not a
Kotlin parser: unknown constructs are ignored and missing fields simply stay
absent from the output.

# Pipeline

The conversion runs in one synchronous pass over the in-memory source:

 1. Leaf extraction: balanced-brace regions, quoted and triple-quoted fields,
    boolean fields and call-argument lists are located by explicit linear
    scanning (no backtracking).
 2. Block decoding: one decoder per concept combines the leaf extractors and
    recurses through nested brace blocks.
 3. Registry: every `object Name : Kind({...})` declaration is decoded into a
    named record. Recognized kinds are BuildType, Template (decoded as a
    build type), Project and GitVcsRoot. The last declaration with a given
    name wins, silently.
 4. Assembly: the root project block's buildType()/subProject()/vcsRoot()
    references are merged with their registered records, recursing through
    sub-projects. A reference without a registered record stays a bare id.

# Output

The document is written as YAML (default) or JSON, chosen once at startup by
the -f flag, and echoed to stdout as indented JSON. The output file defaults
to teamcity.yaml or teamcity.json in the current directory.

# Usage

Convert the settings of the current repository:

	ktsconv -D .teamcity

Emit JSON to a chosen path:

	ktsconv -D .teamcity -f json -o build/settings.json

# Error Behavior

Only two conditions abort the run, both reported as plain diagnostics: the
settings file does not exist, or it contains no terminated root project
block. Everything else degrades to partial records: an unterminated nested
block, a missing field or an unknown step kind never fails the conversion.

# Quirks Kept For Compatibility

Step lists are ordered by kind (script, python, powershell, kotlinScript,
generic step), not by source position. The enabled flag of a vcs trigger is
emitted as the literal string "true" or "false". Both match the document
format this tool replaces.

# Dependencies

- github.com/agilira/orpheus: typed error constructors
- gopkg.in/yaml.v3: YAML serialization

Requires Go 1.18+ for fuzzing support.
*/
package main
