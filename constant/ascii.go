package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
     _
  __| |_   _____
 / _' \ \ / / __|
| (_| |\ V /\__ \
 \__,_| \_/ |___/`
