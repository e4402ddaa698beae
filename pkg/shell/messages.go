package shell

const (
	welcomeMessage = `
Hello and welcome! This tool generates random inputs
for a MapReduce problem.

Please select what you'd like to do.
`

	menuMessage = `
1. Generate list of random numbers as input for a MapReduce problem.
2. Exit
`

	choicePrompt = "Please, make your choice here: "

	fileCountPrompt = `
Please, specify how many files you want me to generate.
In case you select random, no more than %d files will be generated.
Enter %s for random or an integer: `

	numberCountPrompt = `
Please, now specify how many numbers you wish each file to contain.
In case you select random, no more than %d numbers will be generated.
Enter %s for random or an integer: `

	rangePrompt = `
Now specify what is the range (+r,-r) in which the numbers should be generated.
In case you select random, the range won't be larger than (+%d, -%d).
Enter %s for random or give me r: `

	thanksMessage   = "Thanks! :)"
	pleaseWait      = "Please wait....."
	allDoneMessage  = "All done! You can find your files in %s"
	farewellMessage = "Thanks for having used this program. Good bye!"

	// GenerateChoice is the menu entry that starts generation.
	GenerateChoice = "1"
)
