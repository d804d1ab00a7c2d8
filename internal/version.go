package internal

// Version is the current wortschatz version
const Version = "0.2.0"
